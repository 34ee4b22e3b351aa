// SPDX-License-Identifier: MIT

package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/dataset"
	"github.com/coderodde/pctree/learn"
	"github.com/coderodde/pctree/metrics"
)

func newTestRecorder(t *testing.T) (*metrics.Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()

	return metrics.NewRecorder(reg), reg
}

func TestRecorder_CountsNodesAndPartitions(t *testing.T) {
	r, _ := newTestRecorder(t)
	a, err := alphabet.New("A", "C", "G", "T")
	require.NoError(t, err)
	d, err := dataset.FromRecords([][]string{{"A", "A"}, {"C", "G"}, {"T", "A"}})
	require.NoError(t, err)

	l, err := learn.New(r.Options(learn.Optimal)...)
	require.NoError(t, err)
	start := time.Now()
	tr, err := l.Learn(a, d)
	r.ObserveRun(learn.Optimal, tr, err, time.Since(start))
	require.NoError(t, err)

	// 15 leaves plus the root, which scores Bell(4) = 15 partitions.
	assert.Equal(t, 16.0, testutil.ToFloat64(r.NodesResolvedTotal.WithLabelValues("optimal")))
	assert.Equal(t, 15.0, testutil.ToFloat64(r.PartitionsEvaluatedTotal.WithLabelValues("optimal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("optimal", metrics.StatusSuccess)))
	assert.Equal(t, tr.Score(), testutil.ToFloat64(r.LastScore.WithLabelValues("optimal")))
}

func TestRecorder_ObserveError(t *testing.T) {
	r, reg := newTestRecorder(t)
	r.ObserveRun(learn.Greedy, nil, errors.New("boom"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("greedy", metrics.StatusError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("greedy", metrics.StatusSuccess)))

	n, err := testutil.GatherAndCount(reg, "pct_learn_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
