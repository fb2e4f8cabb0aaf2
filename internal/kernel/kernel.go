// SPDX-License-Identifier: MIT

package kernel

const errLength = "kernel: slice length mismatch"

// each implementation must provide these methods.
type implementation interface {
	Name() string

	// Axpy computes y[i] += alpha*x[i] in place.
	Axpy(alpha float32, x, y []float32)

	// Scal computes x[i] *= alpha in place.
	Scal(alpha float32, x []float32)
}

// Name reports the implementation selected at build time.
func Name() string {
	return impl.Name()
}

// Dot returns sum(x[i]*y[i]) as a left fold over ascending indices.
// Like SumSquares it never dispatches to blas32, whose unrolled Sdot sums in
// a different order. Panics if lengths differ.
func Dot(x, y []float32) float32 {
	if len(x) != len(y) {
		panic(errLength)
	}

	var acc float32
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc
}

// Axpy computes y += alpha*x element-wise.
// Panics if lengths differ.
func Axpy(alpha float32, x, y []float32) {
	if len(x) != len(y) {
		panic(errLength)
	}
	if len(x) == 0 {
		return
	}
	impl.Axpy(alpha, x, y)
}

// Add computes y += x element-wise.
// Panics if lengths differ.
func Add(x, y []float32) {
	Axpy(1, x, y)
}

// Scal multiplies every element of x by alpha in place.
func Scal(alpha float32, x []float32) {
	if len(x) == 0 {
		return
	}
	impl.Scal(alpha, x)
}

// SumSquares returns sum(x[i]*x[i]) as a left fold over ascending indices.
// It never dispatches to blas32 so the summation order is fixed on every
// platform and build.
func SumSquares(x []float32) float32 {
	var acc float32
	for _, v := range x {
		acc += v * v
	}

	return acc
}

// Fill sets every element of x to v.
func Fill(x []float32, v float32) {
	for i := range x {
		x[i] = v
	}
}
