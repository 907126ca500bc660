package config

import (
	"os"
	"strings"
)

// Environment is a snapshot of process environment variables.
// Unlike the grouped configs it keeps the difference between an unset
// variable and one set to the empty string.
type Environment map[string]string

// Lookup returns the value bound to key and whether it was set
func (e Environment) Lookup(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}

// EnvironmentFrom builds a snapshot from KEY=VALUE pairs as returned by os.Environ.
// Later duplicates win; entries without '=' are ignored.
func EnvironmentFrom(pairs []string) Environment {
	env := make(Environment, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Load reads configuration from environment variables as raw strings
// Components handle validation and defaults during initialization
func Load() *Config {
	return &Config{
		Launcher: LauncherConfig{
			Profile:       os.Getenv("CAMOUFOX_LAUNCHER_PROFILE"),
			Mode:          os.Getenv("CAMOUFOX_LAUNCH_MODE"),
			Python:        os.Getenv("CAMOUFOX_PYTHON"),
			ShutdownGrace: os.Getenv("CAMOUFOX_SHUTDOWN_GRACE"),
		},
		Status: StatusConfig{
			Addr:         os.Getenv("CAMOUFOX_STATUS_ADDR"),
			JWTSecret:    os.Getenv("CAMOUFOX_STATUS_JWT_SECRET"),
			ReadTimeout:  os.Getenv("CAMOUFOX_STATUS_READ_TIMEOUT"),
			WriteTimeout: os.Getenv("CAMOUFOX_STATUS_WRITE_TIMEOUT"),
		},
		Worker: WorkerConfig{
			ProbeInterval: os.Getenv("CAMOUFOX_PROBE_INTERVAL"),
		},
		Logging: LoggingConfig{
			Level:       os.Getenv("LOG_LEVEL"),
			Format:      os.Getenv("LOG_FORMAT"),
			ServiceName: os.Getenv("SERVICE_NAME"),
			Dir:         os.Getenv("LOG_DIR"),
		},
		Env: EnvironmentFrom(os.Environ()),
	}
}
