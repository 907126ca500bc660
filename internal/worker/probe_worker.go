package worker

import (
	"fmt"
	"time"

	"github.com/dustin/camoufox-launcher/config"
	"github.com/dustin/camoufox-launcher/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ProbeFunc defines the function signature for probe operations
type ProbeFunc func() error

// ProbeWorker runs a probe on a fixed interval
type ProbeWorker struct {
	name          string
	cron          *cron.Cron
	probeFunc     ProbeFunc
	probeInterval time.Duration
	logger        *logger.Logger
	entryID       cron.EntryID
}

// NewProbeWorker creates a cron-scheduled worker with validation and defaults
func NewProbeWorker(cfg *config.WorkerConfig, name string, probeFunc ProbeFunc, logger *logger.Logger) (*ProbeWorker, error) {
	// Set defaults for nil or empty config values
	var probeInterval time.Duration = 15 * time.Second
	if cfg != nil && cfg.ProbeInterval != "" {
		duration, err := time.ParseDuration(cfg.ProbeInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid probe interval '%s': %v", cfg.ProbeInterval, err)
		}
		if duration < time.Second {
			return nil, fmt.Errorf("invalid probe interval '%s': must be at least 1s", cfg.ProbeInterval)
		}
		probeInterval = duration
	}

	return &ProbeWorker{
		name:          name,
		cron:          cron.New(),
		probeFunc:     probeFunc,
		probeInterval: probeInterval,
		logger:        logger.WithComponent("probe-worker"),
	}, nil
}

// Start schedules and begins the probe worker
func (w *ProbeWorker) Start() error {
	w.logger.Info(fmt.Sprintf("Starting probe worker: %s (every %v)", w.name, w.probeInterval))

	entryID, err := w.cron.AddFunc(w.schedule(), w.run)
	if err != nil {
		w.logger.Error("Failed to schedule probe worker " + w.name + ": " + err.Error())
		return err
	}

	w.entryID = entryID
	w.cron.Start()

	return nil
}

// Stop gracefully shuts down the probe worker
func (w *ProbeWorker) Stop() error {
	w.logger.Info("Stopping probe worker: " + w.name)

	if w.entryID > 0 {
		w.cron.Remove(w.entryID)
	}

	ctx := w.cron.Stop()
	<-ctx.Done() // Wait for a running probe to finish

	w.logger.Info("Probe worker stopped: " + w.name)

	return nil
}

// IsRunning checks if the worker has active cron entries
func (w *ProbeWorker) IsRunning() bool {
	return len(w.cron.Entries()) > 0
}

func (w *ProbeWorker) run() {
	if err := w.probeFunc(); err != nil {
		w.logger.Debug("Probe " + w.name + " failed: " + err.Error())
		return
	}
	w.logger.Debug("Probe " + w.name + " succeeded")
}

// schedule converts the interval to a cron descriptor, truncated to whole seconds
func (w *ProbeWorker) schedule() string {
	return fmt.Sprintf("@every %s", w.probeInterval.Truncate(time.Second))
}
