// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/coderodde/pctree/alphabet"
)

// Generator walks the partitions of n elements into exactly b blocks in
// restricted-growth-string order. It follows the bufio.Scanner pattern:
//
//	for g.Next() { use(g.Partition()) }
//
// A Generator is not safe for concurrent use.
type Generator struct {
	n, b    int
	s       []int // s[i]: block of element i
	m       []int // m[i]: max(s[0..i])
	started bool
	done    bool
}

// NewGenerator prepares the walk over the Stirling2(n, b) partitions.
//
// n == 0 yields an empty walk whatever b is. Otherwise b must lie in [1, n].
//
// Errors: ErrNegativeSize, ErrTooLarge, ErrBlockCount.
func NewGenerator(n, b int) (*Generator, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeSize, n)
	}
	if n == 0 {
		return &Generator{done: true}, nil
	}
	if n >= 64 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooLarge, n)
	}
	if b < 1 || b > n {
		return nil, fmt.Errorf("%w: b=%d, n=%d", ErrBlockCount, b, n)
	}

	g := &Generator{n: n, b: b, s: make([]int, n), m: make([]int, n)}
	// positions up to n−b start in block 0; the tail climbs 1..b−1 so that
	// exactly b blocks are used
	for i := n - b + 1; i < n; i++ {
		g.s[i] = i - n + b
		g.m[i] = i - n + b
	}

	return g, nil
}

// Next advances to the next partition and reports whether there is one.
func (g *Generator) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		return true
	}
	if !g.advance() {
		g.done = true
		return false
	}

	return true
}

// advance moves s to its successor; false means the walk is exhausted.
func (g *Generator) advance() bool {
	n, b := g.n, g.b

	i := n - 1
	for i > 0 && !(g.s[i] < b-1 && g.s[i] <= g.m[i-1]) {
		i--
	}
	if i == 0 {
		return false
	}

	g.s[i]++
	g.m[i] = max(g.m[i-1], g.s[i])

	j := i + 1
	// middle segment (i, n−b+m[i]] restarts in block 0
	for ; j <= n-b+g.m[i]; j++ {
		g.s[j] = 0
		g.m[j] = g.m[i]
	}
	// tail opens the remaining blocks m[i]+1 … b−1, one per position
	for ; j < n; j++ {
		g.s[j] = b - n + j
		g.m[j] = b - n + j
	}

	return true
}

// Partition returns the current partition as b labels ordered by block id.
// Each call allocates a fresh slice. It must only be called after Next
// returned true.
func (g *Generator) Partition() Partition {
	out := make(Partition, g.b)
	for i, blk := range g.s {
		out[blk] |= alphabet.Label(1) << uint(i)
	}

	return out
}

// Codes returns a copy of the current restricted growth string.
func (g *Generator) Codes() []int {
	out := make([]int, len(g.s))
	copy(out, g.s)

	return out
}

// Generate materializes every partition of n elements into b blocks.
func Generate(n, b int) ([]Partition, error) {
	g, err := NewGenerator(n, b)
	if err != nil {
		return nil, err
	}
	var out []Partition
	if n > 0 {
		out = make([]Partition, 0, capHint(Stirling2(n, b)))
	}
	for g.Next() {
		out = append(out, g.Partition())
	}

	return out, nil
}

// All returns the Bell(n) partitions of n elements: block count 1 first,
// then 2, … up to n, each group in generator order. n == 0 gives an empty
// list.
//
// Complexity: O(n·Bell(n)) time and memory.
func All(n int) ([]Partition, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeSize, n)
	}
	if n >= 64 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooLarge, n)
	}
	var out []Partition
	if n > 0 {
		out = make([]Partition, 0, capHint(Bell(n)))
	}
	for b := 1; b <= n; b++ {
		part, err := Generate(n, b)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}

	return out, nil
}

// capHint bounds a preallocation; counts past n = 25 wrap around uint64.
func capHint(count uint64) int {
	const limit = 1 << 20
	if count > limit {
		return limit
	}

	return int(count)
}
