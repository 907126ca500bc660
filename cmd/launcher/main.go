package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/camoufox-launcher/config"
	"github.com/dustin/camoufox-launcher/internal/browser"
	"github.com/dustin/camoufox-launcher/internal/health"
	"github.com/dustin/camoufox-launcher/internal/launch"
	"github.com/dustin/camoufox-launcher/internal/worker"
	"github.com/dustin/camoufox-launcher/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	appLogger, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	// Resolve before anything external is started
	plan, err := resolveLaunch(cfg)
	if err != nil {
		appLogger.Fatal(err.Error())
	}

	launchID := uuid.New()
	appLogger.WithField("launch_id", launchID.String()).
		WithField("profile", plan.profile.Name).
		WithField("mode", string(plan.mode)).
		WithField("kwargs", plan.config.Kwargs()).
		Info("Launching camoufox server")

	if plan.mode == browser.ModeExec {
		if err := browser.NewExecLauncher(&cfg.Launcher, appLogger).Launch(context.Background(), plan.config); err != nil {
			appLogger.Fatal(err.Error())
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := supervise(ctx, cfg, appLogger, launchID, plan)
	stop()
	os.Exit(code)
}

// launchPlan is everything resolved from the environment before launching
type launchPlan struct {
	profile launch.Profile
	mode    browser.Mode
	config  *launch.LaunchConfig
}

// resolveLaunch validates the launcher settings and resolves the camoufox parameters
func resolveLaunch(cfg *config.Config) (*launchPlan, error) {
	profile, err := launch.ParseProfile(cfg.Launcher.Profile)
	if err != nil {
		return nil, fmt.Errorf("invalid launcher profile: %w", err)
	}

	mode, err := browser.ParseMode(cfg.Launcher.Mode)
	if err != nil {
		return nil, fmt.Errorf("invalid launch mode: %w", err)
	}

	launchCfg, err := launch.Resolve(cfg.Env, profile)
	if err != nil {
		return nil, err
	}

	return &launchPlan{profile: profile, mode: mode, config: launchCfg}, nil
}

// supervise runs the server as a child process and returns the exit code.
// Cancelling ctx is treated as a shutdown request.
func supervise(ctx context.Context, cfg *config.Config, appLogger *logger.Logger, launchID uuid.UUID, plan *launchPlan) int {
	launchCfg := plan.config

	processLauncher, err := browser.NewProcessLauncher(&cfg.Launcher, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize launcher: " + err.Error())
		return 1
	}

	var statusServer *health.Server
	var probeWorker *worker.ProbeWorker
	if cfg.Status.Addr != "" {
		prober := health.NewProber(launchCfg.ProbeAddr(), 2*time.Second)

		probeWorker, err = worker.NewProbeWorker(&cfg.Worker, "camoufox-readiness", prober.Check, appLogger)
		if err != nil {
			appLogger.Error("Failed to initialize probe worker: " + err.Error())
			return 1
		}

		gin.SetMode(gin.ReleaseMode)
		statusServer, err = health.NewServer(&cfg.Status, health.Dependencies{
			Service:  "camoufox-launcher",
			LaunchID: launchID,
			Profile:  plan.profile,
			Mode:     browser.ModeSupervise,
			Launch:   launchCfg,
			Process:  processLauncher,
			Probe:    prober,
			Worker:   probeWorker,
		}, appLogger)
		if err != nil {
			appLogger.Error("Failed to initialize status server: " + err.Error())
			return 1
		}

		if err := probeWorker.Start(); err != nil {
			appLogger.Error("Failed to start probe worker: " + err.Error())
		}
		statusServer.Start()
	}

	launchErr := processLauncher.Launch(ctx, launchCfg)

	if probeWorker != nil {
		probeWorker.Stop()
	}
	if statusServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := statusServer.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Status server forced to shutdown: " + err.Error())
		}
		cancel()
	}

	if launchErr == nil {
		return 0
	}
	if ctx.Err() != nil {
		appLogger.Info("Camoufox server stopped after shutdown signal")
		return 0
	}

	appLogger.Error(launchErr.Error())

	var exitErr *exec.ExitError
	if errors.As(launchErr, &exitErr) && exitErr.ExitCode() > 0 {
		appLogger.Info("Exiting with camoufox server status " + strconv.Itoa(exitErr.ExitCode()))
		return exitErr.ExitCode()
	}
	return 1
}
