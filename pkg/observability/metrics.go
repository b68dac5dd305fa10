package observability

import (
	"context"

	"github.com/aretw0/collatz/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors fed by evaluator hooks.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Transitions prometheus.Histogram
	Peak        prometheus.Histogram
	Duration    prometheus.Histogram
	CacheHits   prometheus.Counter
}

// NewMetrics registers the collectors on reg. A nil reg uses a private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		// Labels: "success", "indivisible", "depth_exceeded", "failed"
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "collatz_evaluations_total",
			Help: "Total trajectory evaluations by result",
		}, []string{"result"}),

		Transitions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "collatz_trajectory_transitions",
			Help:    "Collatz steps per completed trajectory",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500, 1000},
		}),

		Peak: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "collatz_trajectory_peak",
			Help:    "Highest value reached per completed trajectory",
			Buckets: prometheus.ExponentialBuckets(1, 10, 10),
		}),

		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "collatz_evaluation_duration_seconds",
			Help:    "Evaluation duration",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),

		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "collatz_cache_hits_total",
			Help: "Trajectories served from the result store instead of the evaluator",
		}),
	}
}

// Hooks returns lifecycle hooks that record every finished evaluation.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluateEnd: func(ctx context.Context, e *domain.EvaluationEvent) {
			m.Evaluations.WithLabelValues(string(e.Outcome)).Inc()
			m.Duration.Observe(e.Duration.Seconds())
			if e.Outcome == domain.OutcomeSuccess {
				m.Transitions.Observe(float64(e.Transitions))
				m.Peak.Observe(float64(e.Peak))
			}
		},
	}
}

// RecordIndivisible counts a zero input, which never reaches the evaluator.
func (m *Metrics) RecordIndivisible() {
	m.Evaluations.WithLabelValues(string(domain.OutcomeIndivisible)).Inc()
}

// RecordCached counts a trajectory served from the result store. It is a
// success for collatz_evaluations_total and feeds the shape histograms, but
// not the duration histogram since nothing was evaluated.
func (m *Metrics) RecordCached(traj *domain.Trajectory) {
	m.CacheHits.Inc()
	m.Evaluations.WithLabelValues(string(domain.OutcomeSuccess)).Inc()
	if traj != nil {
		m.Transitions.Observe(float64(traj.Transitions()))
		m.Peak.Observe(float64(traj.Peak))
	}
}
