// Package api configures the ops HTTP server that runs next to a scan:
// Prometheus metrics, a health endpoint and pprof.
package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"webroulette/internal/config"
	"webroulette/pkg/controller"
)

const (
	// HealthPath is where the health report is served.
	HealthPath = "/healthz"
	// PprofPath is the prefix of the profiling endpoints.
	PprofPath = "/debug/pprof/"

	healthTimeout = 2 * time.Second
)

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":9090".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	// The CPU profile endpoint needs it to be longer than the requested profile.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the collaborators exposed by the server.
type Deps struct {
	// Gatherer supplies the metrics. Nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// Checks are run by the health endpoint.
	Checks map[string]controller.HealthCheck
}

// NewServer wires up and returns a configured *http.Server. It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - health report (HealthPath)
// - pprof endpoints for profiling (PprofPath)
// and wraps the mux with the logging middleware.
func NewServer(deps Deps, opts Options) *http.Server {
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle(HealthPath, controller.Health(healthTimeout, deps.Checks))
	mux.Handle(PprofPath, controller.PprofMux(PprofPath))

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           controller.WithLogger(mux),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}
