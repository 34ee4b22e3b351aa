// SPDX-License-Identifier: MIT

package bic

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance bounds |Σp − 1| for a distribution to be accepted.
const Tolerance = 1e-5

var (
	// ErrBadSize is returned for non-positive alphabet or dataset sizes.
	ErrBadSize = errors.New("bic: alphabet and dataset sizes must be positive")

	// ErrEmptyNode is returned when a distribution is requested for a node
	// no row reaches. It signals a row-accounting bug, never bad input.
	ErrEmptyNode = errors.New("bic: node receives no rows")

	// ErrInconsistentDistribution is returned when probabilities do not sum
	// to 1 within Tolerance.
	ErrInconsistentDistribution = errors.New("bic: probabilities do not sum to 1")
)

// Penalty returns k = ½·(alphabetSize−1)·ln(datasetSize).
func Penalty(alphabetSize, datasetSize int) (float64, error) {
	if alphabetSize < 1 || datasetSize < 1 {
		return 0, fmt.Errorf("%w: alphabet %d, dataset %d", ErrBadSize, alphabetSize, datasetSize)
	}

	return 0.5 * float64(alphabetSize-1) * math.Log(float64(datasetSize)), nil
}

// Scorer holds the penalty of one learn call. The zero value scores with
// k = 0. Scorer is a value type and safe for concurrent use.
type Scorer struct {
	k float64
}

// NewScorer computes the penalty once for the given training set.
func NewScorer(alphabetSize, datasetSize int) (Scorer, error) {
	k, err := Penalty(alphabetSize, datasetSize)
	if err != nil {
		return Scorer{}, err
	}

	return Scorer{k: k}, nil
}

// Penalty returns k.
func (s Scorer) Penalty() float64 { return s.k }

// Score returns −k + LogLikelihood(counts). A node without rows scores −k.
func (s Scorer) Score(counts []int) float64 {
	return LogLikelihood(counts) - s.k
}

// LogLikelihood returns Σ c·ln(c/T); zero counts contribute nothing.
func LogLikelihood(counts []int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	t := float64(total)
	ll := 0.0
	for _, c := range counts {
		if c > 0 {
			f := float64(c)
			ll += f * math.Log(f/t)
		}
	}

	return ll
}

// Distribution returns c(s)/T per symbol.
//
// Errors: ErrEmptyNode when T == 0, ErrInconsistentDistribution when the
// mass drifts from 1 by more than Tolerance.
func Distribution(counts []int) ([]float64, error) {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, ErrEmptyNode
	}
	p := make([]float64, len(counts))
	t := float64(total)
	for i, c := range counts {
		p[i] = float64(c) / t
	}
	if err := CheckDistribution(p); err != nil {
		return nil, err
	}

	return p, nil
}

// CheckDistribution verifies that p is a probability vector: no negative or
// NaN entries and a total within Tolerance of 1.
func CheckDistribution(p []float64) error {
	sum := 0.0
	for i, v := range p {
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("%w: entry %d is %v", ErrInconsistentDistribution, i, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > Tolerance {
		return fmt.Errorf("%w: sum %v", ErrInconsistentDistribution, sum)
	}

	return nil
}
