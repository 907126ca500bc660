package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/camoufox-launcher/config"
	"github.com/dustin/camoufox-launcher/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// Server exposes launcher status over HTTP next to the camoufox server
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer creates the status server with validation and defaults
func NewServer(cfg *config.StatusConfig, deps Dependencies, log *logger.Logger) (*Server, error) {
	if cfg.Addr == "" {
		return nil, errors.New("status server address is required")
	}

	readTimeout, err := parseTimeout("read", cfg.ReadTimeout)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := parseTimeout("write", cfg.WriteTimeout)
	if err != nil {
		return nil, err
	}

	componentLogger := log.WithComponent("status-server")

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewRouter(deps, cfg.JWTSecret, componentLogger),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		logger: componentLogger,
	}, nil
}

// NewRouter builds the status router with the standard middleware stack
func NewRouter(deps Dependencies, jwtSecret string, log *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(requestid.New())
	router.Use(requestLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	var auth gin.HandlerFunc
	if jwtSecret != "" {
		auth = JWTMiddleware(jwtSecret)
	}

	NewHandler(deps).RegisterRoutes(router, auth)

	return router
}

// Start serves in the background. Failures are logged and do not stop the camoufox server.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Status server listening on " + s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Status server failed: " + err.Error())
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug(fmt.Sprintf("%s %s %s (%v) request_id=%s",
			c.Request.Method, c.Request.URL.Path, strconv.Itoa(c.Writer.Status()),
			time.Since(start), requestid.Get(c)))
	}
}

func parseTimeout(name, raw string) (time.Duration, error) {
	if raw == "" {
		return 30 * time.Second, nil
	}
	duration, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid status %s timeout '%s': %v", name, raw, err)
	}
	return duration, nil
}
