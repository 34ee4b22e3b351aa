// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

// GenOption configures Generate.
type GenOption func(*genConfig)

type genConfig struct {
	rng    *rand.Rand
	signal float64
	err    error
}

// defaultGenSeed keeps Generate deterministic when no seed is given.
const defaultGenSeed = 1

// WithSeed seeds the generator's RNG.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG directly. A nil RNG is recorded as an option
// violation.
func WithRand(r *rand.Rand) GenOption {
	return func(c *genConfig) {
		if r == nil {
			c.err = fmt.Errorf("%w: nil rand", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithSignal sets the probability p∈[0,1] that a row's response copies its
// last explanatory symbol; otherwise the response is drawn uniformly.
// p = 0 yields pure noise, p = 1 a deterministic order-1 source.
func WithSignal(p float64) GenOption {
	return func(c *genConfig) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			c.err = fmt.Errorf("%w: signal %v outside [0,1]", ErrOptionViolation, p)
			return
		}
		c.signal = p
	}
}

// Generate draws n rows of explanatory length depth over symbols.
// Explanatory symbols are uniform; the response follows WithSignal.
// Identical arguments and seed always give the identical dataset.
//
// Complexity: O(n·depth).
func Generate(symbols []string, n, depth int, opts ...GenOption) (*Dataset, error) {
	if len(symbols) == 0 || n < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: %d symbols, %d rows, depth %d", ErrBadSize, len(symbols), n, depth)
	}
	cfg := genConfig{rng: rand.New(rand.NewSource(defaultGenSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	rows := make([]Row, 0, n)
	buf := make([]string, depth+1)
	for i := 0; i < n; i++ {
		for j := 0; j < depth; j++ {
			buf[j] = symbols[cfg.rng.Intn(len(symbols))]
		}
		if cfg.rng.Float64() < cfg.signal {
			buf[depth] = buf[depth-1]
		} else {
			buf[depth] = symbols[cfg.rng.Intn(len(symbols))]
		}
		r, err := NewRow(buf...)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}

	return New(rows...)
}
