package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentFrom(t *testing.T) {
	env := EnvironmentFrom([]string{
		"CAMOUFOX_PORT=9001",
		"CAMOUFOX_WS_PATH=",
		"EQUALS=a=b",
		"MALFORMED",
		"=nokey",
		"CAMOUFOX_PORT=9002",
	})

	port, ok := env.Lookup("CAMOUFOX_PORT")
	assert.True(t, ok)
	assert.Equal(t, "9002", port)

	wsPath, ok := env.Lookup("CAMOUFOX_WS_PATH")
	assert.True(t, ok, "empty values are still set")
	assert.Equal(t, "", wsPath)

	value, ok := env.Lookup("EQUALS")
	assert.True(t, ok)
	assert.Equal(t, "a=b", value)

	_, ok = env.Lookup("MALFORMED")
	assert.False(t, ok)
	_, ok = env.Lookup("CAMOUFOX_HEADLESS")
	assert.False(t, ok)
	assert.Len(t, env, 3)
}

func TestLoad(t *testing.T) {
	t.Setenv("CAMOUFOX_LAUNCHER_PROFILE", "debug")
	t.Setenv("CAMOUFOX_LAUNCH_MODE", "exec")
	t.Setenv("CAMOUFOX_PYTHON", "/opt/venv/bin/python")
	t.Setenv("CAMOUFOX_STATUS_ADDR", ":7778")
	t.Setenv("CAMOUFOX_PROBE_INTERVAL", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CAMOUFOX_PORT", "9001")

	cfg := Load()

	assert.Equal(t, "debug", cfg.Launcher.Profile)
	assert.Equal(t, "exec", cfg.Launcher.Mode)
	assert.Equal(t, "/opt/venv/bin/python", cfg.Launcher.Python)
	assert.Equal(t, ":7778", cfg.Status.Addr)
	assert.Equal(t, "5s", cfg.Worker.ProbeInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)

	port, ok := cfg.Env.Lookup("CAMOUFOX_PORT")
	assert.True(t, ok)
	assert.Equal(t, "9001", port)
}
