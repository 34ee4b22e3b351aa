// SPDX-License-Identifier: MIT

package learn

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for learn calls.
var (
	// ErrInvalidArgument is returned when the alphabet or dataset cannot be
	// learned from: nil or empty inputs, ragged rows, unknown symbols, or a
	// search space over the configured limits.
	ErrInvalidArgument = errors.New("learn: invalid argument")

	// ErrInternalConsistency is returned when a learned tree fails its own
	// invariants (an empty selected leaf, a distribution off by more than
	// the tolerance). It always indicates a bug, never bad input.
	ErrInternalConsistency = errors.New("learn: internal consistency violated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("learn: invalid option supplied")
)

// Algorithm selects how the children of each extended node are grouped.
type Algorithm int

const (
	// Optimal scores every partition of the alphabet.
	Optimal Algorithm = iota

	// Greedy merges singleton blocks pairwise while a merge does not lower
	// the score.
	Greedy

	// RandomSampling scores the single-block partition plus a fixed number
	// of random partitions.
	RandomSampling

	// Independence always keeps the single all-covering block, which yields
	// the marginal response model.
	Independence
)

var algorithmNames = [...]string{
	Optimal:        "optimal",
	Greedy:         "greedy",
	RandomSampling: "random",
	Independence:   "independence",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a case-insensitive name ("optimal", "greedy",
// "random", "independence") to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrOptionViolation, name)
}

// Defaults.
const (
	// DefaultMaxNodes bounds the extended tree.
	DefaultMaxNodes = 1 << 24

	// DefaultMaxPartitions bounds the partitions Optimal caches per call;
	// it admits alphabets of up to 12 symbols.
	DefaultMaxPartitions = 1 << 23

	// DefaultSamples is the number of random partitions RandomSampling
	// draws per node.
	DefaultSamples = 32

	// DefaultSeed seeds RandomSampling when WithSeed is not given.
	DefaultSeed = 1
)

// Option configures a Learner via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the parameters of a Learner.
type Options struct {
	// Algorithm picks the per-node selector.
	Algorithm Algorithm

	// Samples is the number of random partitions per node for
	// RandomSampling.
	Samples int

	// Seed seeds RandomSampling. Each learn call restarts from it.
	Seed int64

	// MaxNodes, if > 0, rejects datasets whose extended tree would exceed
	// it. Trees above math.MaxInt32 nodes are rejected in any case.
	MaxNodes int

	// MaxPartitions, if > 0, rejects alphabets whose partition count
	// exceeds it under Optimal. 0 disables the check.
	MaxPartitions int

	// Logger receives Debug records about each call.
	Logger *slog.Logger

	// OnNodeResolved is called once per extended node, bottom-up, with its
	// remaining depth and the number of candidate groupings scored for it
	// (0 at leaves).
	OnNodeResolved func(remaining, evaluated int)

	err error
}

// DefaultOptions returns the Options of a plain optimal learner:
//   - Optimal algorithm
//   - DefaultSamples, DefaultSeed
//   - DefaultMaxNodes, DefaultMaxPartitions
//   - a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Algorithm:      Optimal,
		Samples:        DefaultSamples,
		Seed:           DefaultSeed,
		MaxNodes:       DefaultMaxNodes,
		MaxPartitions:  DefaultMaxPartitions,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnNodeResolved: func(int, int) {},
	}
}

// WithAlgorithm selects the grouping strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a < Optimal || a > Independence {
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(a))
			return
		}
		o.Algorithm = a
	}
}

// WithSamples sets the random partitions drawn per node (n ≥ 1).
func WithSamples(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: samples must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Samples = n
	}
}

// WithSeed seeds RandomSampling.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxNodes bounds the extended tree.
//
//	n > 0: reject larger trees
//	n == 0: only the math.MaxInt32 ceiling
//	n < 0: invalid option → ErrOptionViolation
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithMaxPartitions bounds the partitions cached by Optimal; 0 disables
// the check and a negative value is an option violation.
func WithMaxPartitions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPartitions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPartitions = n
	}
}

// WithLogger routes Debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnNodeResolved registers a hook run as each extended node is
// resolved. A nil hook is ignored.
func WithOnNodeResolved(fn func(remaining, evaluated int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNodeResolved = fn
		}
	}
}
