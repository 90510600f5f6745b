package planetary

import "github.com/prometheus/client_golang/prometheus"

var (
	stepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planetary_steps_total",
			Help: "Total number of integration steps taken.",
		},
		[]string{"method"},
	)

	collisionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "planetary_collisions_total",
			Help: "Total number of collision events detected.",
		},
	)

	stepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planetary_step_duration_seconds",
			Help:    "Integration step duration in seconds.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(stepsTotal)
	prometheus.MustRegister(collisionsTotal)
	prometheus.MustRegister(stepDuration)
}
