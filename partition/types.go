// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"strconv"
	"strings"

	"github.com/coderodde/pctree/alphabet"
)

var (
	// ErrNegativeSize is returned for n < 0.
	ErrNegativeSize = errors.New("partition: negative element count")

	// ErrTooLarge is returned for n ≥ 64, beyond the 64-bit label width.
	ErrTooLarge = errors.New("partition: element count exceeds label width")

	// ErrBlockCount is returned when b is outside [1, n].
	ErrBlockCount = errors.New("partition: block count out of range")
)

// Partition is an ordered list of disjoint, non-empty blocks whose union is
// the full element set.
type Partition []alphabet.Label

// Covers reports whether p is a partition of the n-element set: blocks are
// non-empty, pairwise disjoint and their union is {0..n−1}.
func (p Partition) Covers(n int) bool {
	var union alphabet.Label
	for _, b := range p {
		if b.IsEmpty() || b.Intersects(union) {
			return false
		}
		union = union.Union(b)
	}

	return n >= 0 && n < 64 && union == alphabet.Label(1)<<uint(n)-1
}

// String renders element indices per block, e.g. "{0,2}{1}".
func (p Partition) String() string {
	var sb strings.Builder
	for _, b := range p {
		sb.WriteByte('{')
		for j, i := range b.Indices() {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(i))
		}
		sb.WriteByte('}')
	}

	return sb.String()
}
