// SPDX-License-Identifier: MIT

package partition

// Stirling2 returns the Stirling number of the second kind S(n, b), the
// number of partitions of n elements into exactly b non-empty blocks.
// Values overflow uint64 around n = 26; callers only need n ≲ 20.
//
// Recurrence: S(n, b) = b·S(n−1, b) + S(n−1, b−1), S(0, 0) = 1.
// Complexity: O(n·b).
func Stirling2(n, b int) uint64 {
	if n < 0 || b < 0 || b > n {
		return 0
	}
	if n == 0 {
		return 1 // b == 0 here
	}
	row := make([]uint64, b+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		top := min(i, b)
		for k := top; k >= 1; k-- {
			row[k] = uint64(k)*row[k] + row[k-1]
		}
		row[0] = 0
	}

	return row[b]
}

// Bell returns the number of partitions of n elements, Σ_b S(n, b).
// Bell(0) is 1 (the empty partition) even though All(0) enumerates nothing.
func Bell(n int) uint64 {
	if n < 0 {
		return 0
	}
	if n == 0 {
		return 1
	}
	var total uint64
	for b := 1; b <= n; b++ {
		total += Stirling2(n, b)
	}

	return total
}
