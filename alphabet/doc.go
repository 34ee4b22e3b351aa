// SPDX-License-Identifier: MIT

// Package alphabet defines the finite ordered symbol set a context tree is
// learned over, together with Label, the bitset encoding of its non-empty
// subsets.
//
// Every symbol owns one bit position (its insertion index), so a Label is a
// uint64 and set operations are single machine instructions:
//
//	a, _ := alphabet.New("A", "C", "G", "T")
//	l, _ := a.LabelOf("A", "T") // 0b1001
//	a.Format(l)                 // "{A, T}"
//
// Limits:
//   - at least one symbol (a zero-size alphabet has no partitions and breaks
//     the BIC penalty);
//   - at most MaxSize symbols, the width of a Label;
//   - the empty string is not a symbol.
//
// Complexity: Labels enumerates 2ⁿ−1 subsets, so it is only practical for
// the small alphabets the exhaustive learner targets (n ≲ 13).
package alphabet
