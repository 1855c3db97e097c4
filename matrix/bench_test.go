// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvtab/frame"
	"github.com/katalvlaran/lvtab/matrix"
)

// benchmarkMap fills an n×n matrix (every other cell present) and times Map.
func benchmarkMap(b *testing.B, n int) {
	labels := make([]frame.Label, n)
	for i := range labels {
		labels[i] = frame.NumLabel(float64(i))
	}
	m, err := matrix.NewLabeled(labels, labels)
	if err != nil {
		b.Fatalf("NewLabeled: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := i % 2; j < n; j += 2 {
			_ = m.Set(i, j, float64(i*n+j))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Map(m, func(v float64) float64 { return v * 1.25 }); err != nil {
			b.Fatalf("Map: %v", err)
		}
	}
}

// BenchmarkMap_Small benchmarks Map on a 64×64 matrix.
func BenchmarkMap_Small(b *testing.B) { benchmarkMap(b, 64) }

// BenchmarkMap_Large benchmarks Map on a 512×512 matrix.
func BenchmarkMap_Large(b *testing.B) { benchmarkMap(b, 512) }
