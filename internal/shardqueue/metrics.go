package shardqueue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segmint",
			Subsystem: "shardqueue",
			Name:      "submissions_total",
			Help:      "Jobs accepted into a shard queue.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "segmint",
			Subsystem: "shardqueue",
			Name:      "queue_full_total",
			Help:      "Submissions rejected because the shard queue was full.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "segmint",
			Subsystem: "shardqueue",
			Name:      "run_duration_seconds",
			Help:      "Job execution latency per shard.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "segmint",
			Subsystem: "shardqueue",
			Name:      "queue_depth",
			Help:      "Current number of queued jobs per shard.",
		},
		[]string{"shard"},
	)
)

func labelFor(shard int) string { return strconv.Itoa(shard) }
