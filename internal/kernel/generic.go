// SPDX-License-Identifier: MIT

package kernel

type generic struct {
}

func (impl generic) Name() string {
	return "generic"
}

func (impl generic) Axpy(alpha float32, x, y []float32) {
	for i := range x {
		y[i] += alpha * x[i]
	}
}

func (impl generic) Scal(alpha float32, x []float32) {
	for i := range x {
		x[i] *= alpha
	}
}
