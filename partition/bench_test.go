// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/coderodde/pctree/partition"
)

// BenchmarkGenerator_Walk10x4 walks S(10,4) = 34105 partitions lazily.
func BenchmarkGenerator_Walk10x4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, err := partition.NewGenerator(10, 4)
		if err != nil {
			b.Fatalf("NewGenerator failed: %v", err)
		}
		for g.Next() {
		}
	}
}

// BenchmarkAll_8 materializes the Bell(8) = 4140 partitions.
func BenchmarkAll_8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := partition.All(8); err != nil {
			b.Fatalf("All failed: %v", err)
		}
	}
}
