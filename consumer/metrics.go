package consumer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCompleted = "completed"
	outcomeStopped   = "stopped"
	outcomeCancelled = "cancelled"
	outcomeFailed    = "failed"
)

var (
	snapshotsPulled = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "stepsort_snapshots_total",
		Help: "The total number of snapshots pulled from sort engines",
	}, []string{"kind"})

	runsFinished = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "stepsort_runs_total",
		Help: "The total number of drained sorts, by how they ended",
	}, []string{"kind", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "stepsort_run_duration_seconds",
		Help:    "Wall-clock time spent draining a sort, consumers included",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"kind"})
)
