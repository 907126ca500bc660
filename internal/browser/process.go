package browser

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/dustin/camoufox-launcher/config"
	"github.com/dustin/camoufox-launcher/internal/launch"
	"github.com/dustin/camoufox-launcher/pkg/logger"
)

// ProcessState is a snapshot of the supervised server process
type ProcessState struct {
	Running   bool      `json:"running"`
	PID       int       `json:"pid,omitempty"`
	StartedAt time.Time `json:"started_at,omitempty"`
	ExitedAt  time.Time `json:"exited_at,omitempty"`
	ExitError string    `json:"exit_error,omitempty"`
}

// ProcessLauncher runs the camoufox server as a child process and waits for it
type ProcessLauncher struct {
	python string
	grace  time.Duration
	stdout io.Writer
	stderr io.Writer
	logger *logger.Logger

	// command builds the child process; replaced in tests
	command func(ctx context.Context, name string, args ...string) *exec.Cmd

	mu    sync.RWMutex
	state ProcessState
}

// NewProcessLauncher creates a supervising launcher with validation and defaults
func NewProcessLauncher(cfg *config.LauncherConfig, log *logger.Logger) (*ProcessLauncher, error) {
	python := DefaultPython
	if cfg != nil && cfg.Python != "" {
		python = cfg.Python
	}

	var grace time.Duration = 10 * time.Second
	if cfg != nil && cfg.ShutdownGrace != "" {
		duration, err := time.ParseDuration(cfg.ShutdownGrace)
		if err != nil {
			return nil, fmt.Errorf("invalid shutdown grace '%s': %v", cfg.ShutdownGrace, err)
		}
		grace = duration
	}

	return &ProcessLauncher{
		python:  python,
		grace:   grace,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  log.WithComponent("process-launcher"),
		command: exec.CommandContext,
	}, nil
}

// Launch starts the server and blocks until it exits.
// Cancelling ctx sends SIGTERM and, after the grace period, SIGKILL.
func (l *ProcessLauncher) Launch(ctx context.Context, cfg *launch.LaunchConfig) error {
	args, err := Command(l.python, cfg)
	if err != nil {
		return err
	}

	cmd := l.command(ctx, args[0], args[1:]...)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = l.grace

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start camoufox server: %w", err)
	}

	pid := cmd.Process.Pid
	l.setState(ProcessState{Running: true, PID: pid, StartedAt: time.Now()})
	l.logger.Info("Camoufox server started with pid " + strconv.Itoa(pid) + " at " + cfg.Endpoint())

	err = cmd.Wait()

	l.mu.Lock()
	l.state.Running = false
	l.state.ExitedAt = time.Now()
	if err != nil {
		l.state.ExitError = err.Error()
	}
	l.mu.Unlock()

	if err != nil {
		return fmt.Errorf("camoufox server exited: %w", err)
	}

	l.logger.Info("Camoufox server exited cleanly")
	return nil
}

// State returns a snapshot of the child process
func (l *ProcessLauncher) State() ProcessState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *ProcessLauncher) setState(state ProcessState) {
	l.mu.Lock()
	l.state = state
	l.mu.Unlock()
}
