package profiler

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "oxygl"

// Metrics are the Prometheus collectors published by the renderer.
type Metrics struct {
	FramesPresented prometheus.Counter
	FrameTime       prometheus.Histogram
	FPS             prometheus.Gauge
	Negotiations    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
//
// Parameters:
//   - reg: the registerer to publish to, e.g. a prometheus.NewRegistry()
//
// Returns:
//   - *Metrics: the registered collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FramesPresented: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_presented_total",
			Help:      "Frames presented with a buffer swap.",
		}),
		FrameTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_time_seconds",
			Help:      "Time spent drawing, submitting and presenting a frame.",
			Buckets:   []float64{.001, .002, .004, .008, .016, .033, .066, .1, .25},
		}),
		FPS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fps",
			Help:      "Frames per second over the last profiler interval.",
		}),
		Negotiations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "context_negotiations_total",
			Help:      "Context negotiations by final state and creation path.",
		}, []string{"state", "path"}),
	}
	reg.MustRegister(m.FramesPresented, m.FrameTime, m.FPS, m.Negotiations)
	return m
}

// ObserveNegotiation counts a finished negotiation.
func (m *Metrics) ObserveNegotiation(res glx.Result) {
	m.Negotiations.WithLabelValues(res.State.String(), res.Path.String()).Inc()
}
