package profiler

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
)

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(p *Profiler)

// WithInterval sets how often statistics are logged. Values <= 0 keep the default.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithMetrics mirrors frame statistics into Prometheus collectors.
func WithMetrics(m *Metrics) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.metrics = m
	}
}

// WithLogger sets the logger statistics are written to.
func WithLogger(l *logger.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		if l != nil {
			p.log = l
		}
	}
}
