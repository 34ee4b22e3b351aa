// SPDX-License-Identifier: MIT

package bic_test

import (
	"math"
	"testing"

	"github.com/coderodde/pctree/bic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPenalty pins k for a few sizes and rejects degenerate ones.
func TestPenalty(t *testing.T) {
	k, err := bic.Penalty(4, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.5*math.Log(10), k, 1e-12)

	k, err = bic.Penalty(1, 100)
	require.NoError(t, err)
	assert.Zero(t, k, "a single-symbol alphabet has no free parameters")

	k, err = bic.Penalty(2, 1)
	require.NoError(t, err)
	assert.Zero(t, k, "ln 1 = 0")

	_, err = bic.Penalty(0, 10)
	assert.ErrorIs(t, err, bic.ErrBadSize)
	_, err = bic.Penalty(3, 0)
	assert.ErrorIs(t, err, bic.ErrBadSize)
}

// TestScore_Formula compares against a hand computation.
func TestScore_Formula(t *testing.T) {
	s, err := bic.NewScorer(4, 10)
	require.NoError(t, err)

	// responses A,A,A,C at one node
	counts := []int{3, 1, 0, 0}
	want := -1.5*math.Log(10) + 3*math.Log(0.75) + math.Log(0.25)
	assert.InDelta(t, want, s.Score(counts), 1e-12)
	assert.InDelta(t, s.Penalty(), -s.Score([]int{0, 0, 0, 0}), 1e-12, "empty node scores -k")
	assert.InDelta(t, -s.Penalty(), s.Score([]int{0, 5, 0, 0}), 1e-12, "pure node has zero log-likelihood")
}

// TestScore_ZeroValueScorer has no penalty.
func TestScore_ZeroValueScorer(t *testing.T) {
	var s bic.Scorer
	assert.InDelta(t, 2*math.Log(0.5), s.Score([]int{1, 1}), 1e-12)
}

// TestDistribution covers the happy path and the consistency failures.
func TestDistribution(t *testing.T) {
	p, err := bic.Distribution([]int{1, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75, 0}, p)

	_, err = bic.Distribution([]int{0, 0})
	assert.ErrorIs(t, err, bic.ErrEmptyNode)
	_, err = bic.Distribution(nil)
	assert.ErrorIs(t, err, bic.ErrEmptyNode)
}

// TestCheckDistribution enforces the 1e-5 tolerance.
func TestCheckDistribution(t *testing.T) {
	assert.NoError(t, bic.CheckDistribution([]float64{0.5, 0.5 + 5e-6}))
	assert.ErrorIs(t, bic.CheckDistribution([]float64{0.5, 0.49}), bic.ErrInconsistentDistribution)
	assert.ErrorIs(t, bic.CheckDistribution([]float64{1.5, -0.5}), bic.ErrInconsistentDistribution)
	assert.ErrorIs(t, bic.CheckDistribution([]float64{math.NaN(), 1}), bic.ErrInconsistentDistribution)
}
