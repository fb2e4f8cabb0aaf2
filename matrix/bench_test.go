// Package matrix_test provides benchmarks for the row/vector operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkF float32
)

// fillRand fills m with values from a seeded source.
func fillRand(b *testing.B, m *matrix.Matrix, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, float32(rng.NormFloat64())); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// randVec returns a seeded random vector of length n.
func randVec(n int, seed int64) *vector.Vector {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = float32(rng.NormFloat64())
	}
	return vector.FromSlice(vals)
}

func BenchmarkDotRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := matrix.New(n, n)
			fillRand(b, m, 1337)
			v := randVec(n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for r := 0; r < n; r++ {
					d, err := m.DotRow(v, r)
					if err != nil {
						b.Fatal(err)
					}
					sinkF = d
				}
			}
		})
	}
}

func BenchmarkAddVectorAndScaleRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := matrix.New(n, n)
			fillRand(b, m, 11)
			v := randVec(n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for r := 0; r < n; r++ {
					if err := m.AddVectorAndScaleRow(v, r, 1e-6); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}
