// SPDX-License-Identifier: MIT

package alphabet

import "math/bits"

// Label is a subset of an alphabet: bit i is set iff the symbol with index i
// belongs to the set. The zero Label is the empty set and only tags the root
// of a context tree.
type Label uint64

// Has reports whether the symbol with index i is in l.
func (l Label) Has(i int) bool {
	if i < 0 || i >= MaxSize {
		return false
	}

	return l&(1<<uint(i)) != 0
}

// Len returns the number of symbols in l.
func (l Label) Len() int { return bits.OnesCount64(uint64(l)) }

// IsEmpty reports whether l contains no symbol.
func (l Label) IsEmpty() bool { return l == 0 }

// Union returns l ∪ o.
func (l Label) Union(o Label) Label { return l | o }

// Intersects reports whether l and o share at least one symbol.
func (l Label) Intersects(o Label) bool { return l&o != 0 }

// Indices returns the symbol indices in l in increasing order.
func (l Label) Indices() []int {
	out := make([]int, 0, l.Len())
	for rest := uint64(l); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}

	return out
}
