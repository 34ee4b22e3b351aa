// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for learn calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/coderodde/pctree/learn"
	"github.com/coderodde/pctree/tree"
)

const (
	namespace = "pct"
	subsystem = "learn"
)

// Run outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Recorder groups the learner instruments.
type Recorder struct {
	RunsTotal *prometheus.CounterVec

	DurationSeconds *prometheus.HistogramVec

	NodesResolvedTotal *prometheus.CounterVec

	PartitionsEvaluatedTotal *prometheus.CounterVec

	TreeLeaves *prometheus.HistogramVec

	LastScore *prometheus.GaugeVec
}

// NewRecorder creates the instruments and registers them with reg.
// Registering twice with the same registry panics, as with promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Learn calls by algorithm and status",
			},
			[]string{"algorithm", "status"},
		),

		DurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "duration_seconds",
				Help:      "Wall time of learn calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"algorithm"},
		),

		NodesResolvedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "nodes_resolved_total",
				Help:      "Extended tree nodes resolved",
			},
			[]string{"algorithm"},
		),

		PartitionsEvaluatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "partitions_evaluated_total",
				Help:      "Candidate child groupings scored",
			},
			[]string{"algorithm"},
		),

		TreeLeaves: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tree_leaves",
				Help:      "Leaves of learned trees",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"algorithm"},
		),

		LastScore: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_score",
				Help:      "BIC score of the most recent successful learn call",
			},
			[]string{"algorithm"},
		),
	}
}

// Options returns learner options that feed the node counters of alg.
func (r *Recorder) Options(alg learn.Algorithm) []learn.Option {
	nodes := r.NodesResolvedTotal.WithLabelValues(alg.String())
	parts := r.PartitionsEvaluatedTotal.WithLabelValues(alg.String())

	return []learn.Option{
		learn.WithOnNodeResolved(func(_, evaluated int) {
			nodes.Inc()
			parts.Add(float64(evaluated))
		}),
	}
}

// ObserveRun records the outcome of one learn call. t is ignored when err
// is non-nil.
func (r *Recorder) ObserveRun(alg learn.Algorithm, t *tree.Tree, err error, elapsed time.Duration) {
	name := alg.String()
	r.DurationSeconds.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		r.RunsTotal.WithLabelValues(name, StatusError).Inc()
		return
	}
	r.RunsTotal.WithLabelValues(name, StatusSuccess).Inc()
	r.TreeLeaves.WithLabelValues(name).Observe(float64(len(t.Leaves())))
	r.LastScore.WithLabelValues(name).Set(t.Score())
}
