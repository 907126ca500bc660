package health

import (
	"net/http"
	"time"

	"github.com/dustin/camoufox-launcher/internal/browser"
	"github.com/dustin/camoufox-launcher/internal/launch"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProcessReporter interface {
	State() browser.ProcessState
}

type ProbeReporter interface {
	Status() ProbeStatus
}

type WorkerReporter interface {
	IsRunning() bool
}

// Dependencies is what the status endpoints report on.
// Probe and Worker are optional.
type Dependencies struct {
	Service  string
	LaunchID uuid.UUID
	Profile  launch.Profile
	Mode     browser.Mode
	Launch   *launch.LaunchConfig
	Process  ProcessReporter
	Probe    ProbeReporter
	Worker   WorkerReporter
}

// Handler handles HTTP requests for launcher status
type Handler struct {
	deps Dependencies
}

func NewHandler(deps Dependencies) *Handler {
	return &Handler{deps: deps}
}

// RegisterRoutes registers the status routes; auth guards the detailed view when not nil
func (h *Handler) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	r.GET("/health", h.Health)

	if auth != nil {
		r.GET("/health/detailed", auth, h.Detailed)
	} else {
		r.GET("/health/detailed", h.Detailed)
	}
}

// Health reports healthy while the camoufox server process is running
func (h *Handler) Health(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	if !h.deps.Process.State().Running {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now(),
		"service":   h.deps.Service,
	})
}

// Detailed reports the resolved launch configuration and runtime state
func (h *Handler) Detailed(c *gin.Context) {
	process := h.deps.Process.State()

	status := "healthy"
	if !process.Running {
		status = "unhealthy"
	}

	response := gin.H{
		"status":    status,
		"timestamp": time.Now(),
		"service":   h.deps.Service,
		"launch_id": h.deps.LaunchID.String(),
		"profile":   h.deps.Profile.Name,
		"mode":      string(h.deps.Mode),
		"config":    h.deps.Launch,
		"endpoint":  h.deps.Launch.Endpoint(),
		"process":   process,
	}
	if h.deps.Probe != nil {
		response["readiness"] = h.deps.Probe.Status()
	}
	if h.deps.Worker != nil {
		response["probe_worker"] = h.deps.Worker.IsRunning()
	}

	c.JSON(http.StatusOK, response)
}
