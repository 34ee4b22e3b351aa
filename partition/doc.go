// SPDX-License-Identifier: MIT

// Package partition enumerates set partitions lazily with restricted growth
// strings.
//
// 🚀 What is a restricted growth string?
//
//	A partition of n ordered elements into b unlabeled blocks is encoded
//	as s[0..n−1] with s[0] = 0 and s[i] ≤ 1 + max(s[0..i−1]); s[i] is the
//	block of element i. Every partition has exactly one such encoding, so
//	walking the strings visits every partition exactly once.
//
// ✨ Key features:
//   - Generator(n, b): lazy, duplicate-free walk over the Stirling2(n, b)
//     partitions into exactly b blocks, O(n) amortized per step;
//   - All(n): the concatenation for b = 1..n, Bell(n) partitions;
//   - blocks are alphabet.Label bitsets (element i ↔ bit i), ordered by
//     their first element.
//
// ⚙️ Usage:
//
//	g, _ := partition.NewGenerator(4, 2)
//	for g.Next() {
//	    fmt.Println(g.Partition()) // 7 partitions of 4 elements into 2 blocks
//	}
//
// Performance: Bell(13) ≈ 2.76·10⁷, so All is meant for n ≲ 13.
package partition
