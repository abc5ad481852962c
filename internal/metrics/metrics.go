// Package metrics registers Prometheus instrumentation for the prediction
// and optimization engines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hardcarbon"

var (
	// PredictionsTotal counts full property predictions.
	PredictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "predictor",
		Name:      "predictions_total",
		Help:      "Total number of full hard carbon property predictions.",
	})

	// OptimizerRunsTotal counts optimization runs.
	OptimizerRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "optimizer",
		Name:      "runs_total",
		Help:      "Total number of process optimization runs.",
	})

	// OptimizerSamplesTotal counts process-condition points evaluated by the
	// optimizer.
	OptimizerSamplesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "optimizer",
		Name:      "samples_total",
		Help:      "Total number of sampled process-condition points evaluated.",
	})

	// OptimizerGoldilocksTotal counts sampled points whose predicted spacing
	// landed in the Goldilocks window.
	OptimizerGoldilocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "optimizer",
		Name:      "goldilocks_hits_total",
		Help:      "Total number of sampled points inside the Goldilocks window.",
	})
)
