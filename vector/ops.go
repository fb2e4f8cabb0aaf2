// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/vecmat/internal/kernel"
)

const (
	ctxAdd             = "Add"
	ctxAddAssign       = "AddAssign"
	ctxAddVectorScaled = "AddVectorScaled"
	ctxDot             = "Dot"
	ctxDotSlice        = "DotSlice"
	ctxAddScaledTo     = "AddScaledTo"
)

// sameLen reports ErrDimensionMismatch wrapped for method unless a and b
// have equal lengths.
func sameLen(method string, a, b int) error {
	if a != b {
		return vectorErrorf(method, mismatchArgs(a, b), ErrDimensionMismatch)
	}
	return nil
}

// AddVectorScaled computes v[i] += scale*other[i] in place.
//
// Errors:
//   - ErrDimensionMismatch when lengths differ; v is left unchanged.
//
// Complexity: O(n), no allocation.
func (v *Vector) AddVectorScaled(other *Vector, scale float32) error {
	if err := sameLen(ctxAddVectorScaled, v.Len(), other.Len()); err != nil {
		return err
	}
	kernel.Axpy(scale, other.elems(), v.elems())

	return nil
}

// Add returns a new vector holding v[i] + other[i].
// Neither operand is modified.
//
// Errors:
//   - ErrDimensionMismatch when lengths differ.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := sameLen(ctxAdd, v.Len(), other.Len()); err != nil {
		return nil, err
	}
	out := v.Clone()
	kernel.Add(other.elems(), out.data)

	return out, nil
}

// AddAssign computes v[i] += other[i] in place; other is not modified.
//
// Errors:
//   - ErrDimensionMismatch when lengths differ; v is left unchanged.
func (v *Vector) AddAssign(other *Vector) error {
	if err := sameLen(ctxAddAssign, v.Len(), other.Len()); err != nil {
		return err
	}
	kernel.Add(other.elems(), v.elems())

	return nil
}

// Scale returns a new vector holding v[i] * factor.
// It never fails; NaN and Inf factors propagate by IEEE 754 rules.
func (v *Vector) Scale(factor float32) *Vector {
	out := v.Clone()
	kernel.Scal(factor, out.data)

	return out
}

// ScaleAssign multiplies every element by factor in place.
func (v *Vector) ScaleAssign(factor float32) {
	kernel.Scal(factor, v.elems())
}

// Dot returns sum(v[i]*other[i]), accumulated left to right.
//
// Errors:
//   - ErrDimensionMismatch when lengths differ.
func (v *Vector) Dot(other *Vector) (float32, error) {
	if err := sameLen(ctxDot, v.Len(), other.Len()); err != nil {
		return 0, err
	}

	return kernel.Dot(v.elems(), other.elems()), nil
}

// DotSlice returns sum(x[j]*v[j]) for a caller-owned slice x.
// x is only read and is not retained.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != Len().
func (v *Vector) DotSlice(x []float32) (float32, error) {
	if err := sameLen(ctxDotSlice, v.Len(), len(x)); err != nil {
		return 0, err
	}

	return kernel.Dot(x, v.elems()), nil
}

// AddScaledTo computes dst[j] += scale*v[j] for a caller-owned slice dst.
// v is not modified and dst is not retained.
//
// Errors:
//   - ErrDimensionMismatch when len(dst) != Len(); dst is left unchanged.
func (v *Vector) AddScaledTo(dst []float32, scale float32) error {
	if err := sameLen(ctxAddScaledTo, v.Len(), len(dst)); err != nil {
		return err
	}
	kernel.Axpy(scale, v.elems(), dst)

	return nil
}
