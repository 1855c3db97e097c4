// SPDX-License-Identifier: MIT

package pivot_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvtab/frame"
	"github.com/katalvlaran/lvtab/pivot"
)

// benchmarkPairwise pivots n*n observations over n row and n column keys.
func benchmarkPairwise(b *testing.B, n int) {
	records := [][]string{{"id_1", "id_2", "car"}}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			records = append(records, []string{strconv.Itoa(i), strconv.Itoa(j), strconv.Itoa(i + j)})
		}
	}
	df, err := frame.FromRecords(records)
	if err != nil {
		b.Fatalf("FromRecords: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = pivot.Pairwise(df); err != nil {
			b.Fatalf("Pairwise: %v", err)
		}
	}
}

// BenchmarkPairwise_Small benchmarks a 16×16 pivot.
func BenchmarkPairwise_Small(b *testing.B) { benchmarkPairwise(b, 16) }

// BenchmarkPairwise_Large benchmarks a 128×128 pivot.
func BenchmarkPairwise_Large(b *testing.B) { benchmarkPairwise(b, 128) }
