package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segmint_client",
			Name:      "generations_total",
			Help:      "Successful content generation requests.",
		},
		[]string{"platform"},
	)

	generationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segmint_client",
			Name:      "generation_failures_total",
			Help:      "Content generation requests that returned an error.",
		},
		[]string{"platform"},
	)

	suggestionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "segmint_client",
			Name:      "suggestions_total",
			Help:      "Content items produced across all generation calls.",
		},
	)
)
