// SPDX-License-Identifier: MIT

package kernel

import (
	"gonum.org/v1/gonum/blas/blas32"
)

// blas dispatches to gonum blas32. Sscal and Saxpy short-circuit alpha == 0,
// which would hide NaN/Inf propagation, so that case runs the generic loop.
type blas struct {
}

func wrap(data []float32) blas32.Vector {
	return blas32.Vector{
		N:    len(data),
		Inc:  1,
		Data: data,
	}
}

func (impl blas) Name() string {
	return "blas32"
}

func (impl blas) Axpy(alpha float32, x, y []float32) {
	if alpha == 0 {
		generic{}.Axpy(alpha, x, y)
		return
	}
	blas32.Axpy(alpha, wrap(x), wrap(y))
}

func (impl blas) Scal(alpha float32, x []float32) {
	if alpha == 0 {
		generic{}.Scal(alpha, x)
		return
	}
	blas32.Scal(alpha, wrap(x))
}
