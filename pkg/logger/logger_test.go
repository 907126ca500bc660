package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dustin/camoufox-launcher/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_BasicLogging(t *testing.T) {
	// Capture output for testing
	var buf bytes.Buffer
	testLogger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := &Logger{logger: testLogger}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLogger_LogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	testLogger := zerolog.New(&buf).Level(zerolog.WarnLevel) // Only warn and above

	logger := &Logger{logger: testLogger}

	logger.Debug("debug message") // Should be filtered out
	logger.Info("info message")   // Should be filtered out
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()

	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	cfg := &config.LoggingConfig{
		Level:       "info",
		Format:      "console",
		ServiceName: "test-service",
	}

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLogLevel(t *testing.T) {
	cfg := &config.LoggingConfig{
		Level:       "invalid-level",
		Format:      "console",
		ServiceName: "test-service",
	}

	logger, err := NewLogger(cfg)
	assert.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	logger, err := NewLogger(&config.LoggingConfig{Format: "xml"})
	assert.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestNewLogger_FileLogging(t *testing.T) {
	logsDir := filepath.Join(t.TempDir(), "logs")

	cfg := &config.LoggingConfig{
		Level:       "debug",
		Format:      "json",
		ServiceName: "test-service",
		Dir:         logsDir,
	}

	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	logger.Info("test log message")

	assert.DirExists(t, logsDir)

	files, err := filepath.Glob(filepath.Join(logsDir, "test-service-*.log"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "No log files found")

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "test log message")
	assert.Contains(t, string(content), `"service":"test-service"`)
	assert.Contains(t, string(content), `"level":"info"`)
}

func TestNewLogger_ConsoleFormatWithFile(t *testing.T) {
	logsDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewLogger(&config.LoggingConfig{
		Level:       "info",
		Format:      "console",
		ServiceName: "console-service",
		Dir:         logsDir,
	})
	require.NoError(t, err)

	logger.Info("console and file message")

	files, err := filepath.Glob(filepath.Join(logsDir, "console-service-*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"console and file message"`)
	assert.Contains(t, string(content), `"service":"console-service"`)
}

func TestNewLogger_ConfigurationDefaults(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         *config.LoggingConfig
		expectError bool
	}{
		{
			name:        "empty config uses defaults",
			cfg:         &config.LoggingConfig{},
			expectError: false,
		},
		{
			name:        "partial config with level only",
			cfg:         &config.LoggingConfig{Level: "debug"},
			expectError: false,
		},
		{
			name: "all fields provided",
			cfg: &config.LoggingConfig{
				Level:       "warn",
				Format:      "console",
				ServiceName: "custom-service",
			},
			expectError: false,
		},
		{
			name:        "unknown level",
			cfg:         &config.LoggingConfig{Level: "loud"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := NewLogger(tc.cfg)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, logger)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	testLogger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	logger := &Logger{logger: testLogger}
	componentLogger := logger.WithComponent("test-component")

	componentLogger.Info("component message")

	output := buf.String()
	assert.Contains(t, output, "component message")
	assert.Contains(t, output, `"component":"test-component"`)
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{logger: zerolog.New(&buf)}

	logger.WithField("port", 7777).WithField("ws_path", "camoufox").Info("launching")

	output := buf.String()
	assert.Contains(t, output, `"port":7777`)
	assert.Contains(t, output, `"ws_path":"camoufox"`)
}

func TestLogger_AllLogLevels(t *testing.T) {
	var buf bytes.Buffer
	testLogger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := &Logger{logger: testLogger}

	testCases := []struct {
		level   string
		message string
		logFunc func(string)
	}{
		{"debug", "debug test message", logger.Debug},
		{"info", "info test message", logger.Info},
		{"warn", "warn test message", logger.Warn},
		{"error", "error test message", logger.Error},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf.Reset()
			tc.logFunc(tc.message)

			output := buf.String()
			assert.Contains(t, output, tc.message)
			assert.Contains(t, output, `"level":"`+tc.level+`"`)
		})
	}
}
