package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/dustin/camoufox-launcher/config"
	"github.com/dustin/camoufox-launcher/internal/launch"
	"github.com/dustin/camoufox-launcher/pkg/logger"
)

// ExecLauncher replaces the launcher process with the camoufox server.
// A successful Launch never returns.
type ExecLauncher struct {
	python string
	logger *logger.Logger

	// exec replaces the process image; replaced in tests
	exec func(argv0 string, argv []string, envv []string) error
}

// NewExecLauncher creates an exec launcher with defaults
func NewExecLauncher(cfg *config.LauncherConfig, log *logger.Logger) *ExecLauncher {
	python := DefaultPython
	if cfg != nil && cfg.Python != "" {
		python = cfg.Python
	}

	return &ExecLauncher{
		python: python,
		logger: log.WithComponent("exec-launcher"),
		exec:   syscall.Exec,
	}
}

func (l *ExecLauncher) Launch(_ context.Context, cfg *launch.LaunchConfig) error {
	args, err := Command(l.python, cfg)
	if err != nil {
		return err
	}

	path, err := exec.LookPath(l.python)
	if err != nil {
		return fmt.Errorf("failed to find python interpreter: %w", err)
	}

	l.logger.Info("Handing over to camoufox server at " + cfg.Endpoint())

	if err := l.exec(path, args, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec camoufox server: %w", err)
	}
	return nil
}
