package profiler

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Monitoring serves /metrics for a registry and the pprof handlers under /debug/pprof.
type Monitoring struct {
	log    *logger.Logger
	server *http.Server
}

// NewMonitoring creates a monitoring server for addr. It does not start listening.
//
// Parameters:
//   - addr: listen address, e.g. ":9100"
//   - gatherer: the registry exposed on /metrics
//   - log: logger for server events
//
// Returns:
//   - *Monitoring: the server
func NewMonitoring(addr string, gatherer prometheus.Gatherer, log *logger.Logger) *Monitoring {
	h := http.NewServeMux()
	h.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	h.HandleFunc("/debug/pprof/", pprof.Index)
	h.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	h.HandleFunc("/debug/pprof/profile", pprof.Profile)
	h.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	h.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return &Monitoring{
		log:    log,
		server: &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second},
	}
}

// Handler returns the HTTP handler of the server.
func (m *Monitoring) Handler() http.Handler { return m.server.Handler }

// Run serves in the background until Shutdown.
func (m *Monitoring) Run() {
	m.log.Info().Str("addr", m.server.Addr).Msg("starting monitoring server")
	go func() {
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.log.Error().Err(err).Msg("monitoring server")
		}
	}()
}

// Shutdown stops the server.
func (m *Monitoring) Shutdown(ctx context.Context) error {
	m.log.Info().Msg("shutting down monitoring server")
	return m.server.Shutdown(ctx)
}
