package config

// Config contains all configuration grouped by domain
type Config struct {
	Launcher LauncherConfig
	Status   StatusConfig
	Worker   WorkerConfig
	Logging  LoggingConfig

	// Env is the snapshot the camoufox launch parameters are resolved from
	Env Environment
}

// All config structs use string fields only - packages handle conversion during initialization
type LauncherConfig struct {
	Profile       string
	Mode          string
	Python        string
	ShutdownGrace string
}

type StatusConfig struct {
	Addr         string
	JWTSecret    string
	ReadTimeout  string
	WriteTimeout string
}

type WorkerConfig struct {
	ProbeInterval string
}

type LoggingConfig struct {
	Level       string
	Format      string
	ServiceName string
	Dir         string
}
