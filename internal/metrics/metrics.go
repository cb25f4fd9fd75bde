package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/gridfit/internal/fitgame"
)

// Metrics holds the Prometheus collectors for the backdrop, the challenge
// and the preview server.
type Metrics struct {
	FramesRendered prometheus.Counter
	Transitions    *prometheus.CounterVec // labels: from, to
	Victories      prometheus.Counter
	Renders        *prometheus.CounterVec // labels: kind={waves,board}, outcome={ok,bad_request,error}
	RenderDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg uses a
// private registry, which keeps tests from colliding on the default one.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		FramesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridfit",
			Name:      "frames_rendered_total",
			Help:      "Backdrop frames painted.",
		}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridfit",
			Name:      "game_transitions_total",
			Help:      "Challenge mode transitions.",
		}, []string{"from", "to"}),
		Victories: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridfit",
			Name:      "game_victories_total",
			Help:      "Challenges completed with every region matched.",
		}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridfit",
			Name:      "http_renders_total",
			Help:      "Preview renders by kind and outcome.",
		}, []string{"kind", "outcome"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridfit",
			Name:      "http_render_duration_seconds",
			Help:      "Preview render duration.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"kind"}),
	}
	reg.MustRegister(m.FramesRendered, m.Transitions, m.Victories, m.Renders, m.RenderDuration)
	return m
}

// Frame counts one painted backdrop frame.
func (m *Metrics) Frame() {
	m.FramesRendered.Inc()
}

// Transition records a challenge mode change.
func (m *Metrics) Transition(from, to fitgame.Mode) {
	m.Transitions.WithLabelValues(from.String(), to.String()).Inc()
	if to == fitgame.ModeVictory {
		m.Victories.Inc()
	}
}
