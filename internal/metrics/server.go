package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config represents monitoring endpoint settings
type Config struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// Logger defines the logging interface used by the metrics package
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}

// NewRegistry creates a registry pre-loaded with the standard Go and process
// collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Server exposes a Prometheus registry over HTTP on a dedicated monitoring
// port, kept separate from application traffic.
type Server struct {
	httpServer *http.Server
	logger     Logger
}

// NewServer creates a metrics server for the given registry
func NewServer(config *Config, reg *prometheus.Registry, logger Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", config.Port),
			Handler: router,
		},
		logger: logger,
	}
}

// Start begins serving the metrics endpoint in the background
func (s *Server) Start() {
	s.logger.LogInfo("Metrics server started", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.LogError(err, "Metrics server terminated unexpectedly")
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
