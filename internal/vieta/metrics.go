package vieta

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for evaluations. They live on the default registry
// so that an embedding program can expose them without extra wiring.
var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vieta_evaluations_total",
			Help: "The total number of constant-term evaluations",
		},
		[]string{"engine", "status"},
	)
	evaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "vieta_evaluation_duration_seconds",
			Help: "The duration of constant-term evaluations in seconds",
		},
		[]string{"engine"},
	)
	rootsDecodedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vieta_roots_decoded_total",
		Help: "The total number of roots successfully decoded",
	})
)
