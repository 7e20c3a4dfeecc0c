package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	CounterAssignmentsCreated   prometheus.Counter
	CounterAssignmentsAccepted  prometheus.Counter
	CounterAssignmentsCompleted prometheus.Counter
	CounterStaleAssignments     prometheus.Counter
	CounterCreateConflicts      prometheus.Counter
	CounterDerivedWorkouts      *prometheus.CounterVec
	CounterDerivationFailures   prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterHandleRequestPanic:  counter("handle_request_panic", "The total number of serve request panics"),
		CounterRateLimitedRequests: counter("rate_limited_requests", "The total number of rate limited requests"),

		CounterAssignmentsCreated:   counter("daily_challenges_created", "Daily challenge assignments created"),
		CounterAssignmentsAccepted:  counter("daily_challenges_accepted", "Daily challenge assignments accepted"),
		CounterAssignmentsCompleted: counter("daily_challenges_completed", "Daily challenge assignments completed"),
		CounterStaleAssignments:     counter("daily_challenges_stale_removed", "Assignments from previous days removed on rollover"),
		CounterCreateConflicts:      counter("daily_challenges_create_conflicts", "Concurrent creations of the same daily assignment"),
		CounterDerivedWorkouts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "derived_workouts",
			Help:      "Workouts generated from accepted or completed challenges",
		}, []string{"type"}),
		CounterDerivationFailures: counter("workout_derivation_failures", "Failed attempts to persist a derived workout"),

		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests served",
		}),
		GaugeLifeSignal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "life_signal",
			Help:      "Shows whether the service is alive",
		}),

		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status_code"}),
	}
}
