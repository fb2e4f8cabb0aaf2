// Package vector_test provides benchmarks for vector operations,
// using deterministic random fill.
package vector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/vector"
)

// benchSizes are the vector lengths to benchmark.
var benchSizes = []int{128, 1024, 16384}

// sinks to defeat dead-code elimination
var (
	sinkV *vector.Vector
	sinkF float32
	sinkI int
)

// randVector fills a vector of length n from a seeded source.
func randVector(n int, seed int64) *vector.Vector {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = float32(rng.NormFloat64())
	}
	return vector.FromSlice(vals)
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randVector(n, 1), randVector(n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkAddVectorScaled(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randVector(n, 3), randVector(n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := x.AddVectorScaled(y, 1e-6); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNorm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randVector(n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = x.Norm()
			}
		})
	}
}

func BenchmarkArgmax(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randVector(n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				idx, err := x.Argmax()
				if err != nil {
					b.Fatal(err)
				}
				sinkI = idx
			}
		})
	}
}
