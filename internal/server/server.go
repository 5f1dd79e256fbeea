// Package server assembles the demo pipeline.
package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"timewrap/internal/config"
	"timewrap/internal/handler"
	"timewrap/internal/metrics"
	"timewrap/internal/middleware"
	"timewrap/internal/pipeline"
	"timewrap/internal/timewrap"
)

// Version is reported by /status.
var Version = "dev"

// New builds the router: request ID and size limit before all routes, timing
// around them, and request counting after them. A nil logger means the global one.
func New(cfg config.Config, logger *zerolog.Logger) (*pipeline.Router, error) {
	format, err := timewrap.HandlerByName(cfg.Formatter)
	if err != nil {
		return nil, fmt.Errorf("formatter: %w", err)
	}

	r := pipeline.NewRouter()
	r.Use(pipeline.BeforeAll, middleware.RequestID)
	r.Use(pipeline.BeforeAll, middleware.RequestSizeLimit(middleware.MaxRequestSize))
	timewrap.Use(r, timewrap.Options{Handler: format, Logger: logger})

	health := handler.NewHealthHandler(Version)
	r.HandleFunc("/health", health.Liveness).Methods(http.MethodGet)
	r.HandleFunc("/status", health.Status).Methods(http.MethodGet)
	r.Handle("/delay/{ms:[0-9]+}", handler.DelayHandler{Max: handler.MaxDelay}).Methods(http.MethodGet)

	if cfg.MetricsEnabled {
		m := metrics.NewRegistry()
		r.Use(pipeline.AfterAll, m.CountRequest)
		r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	}
	return r, nil
}
