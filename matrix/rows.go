// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row/vector kernels: dot product of one row with a vector, and the fused
//     row update row(i) += a·v.
//
// Design:
//   - Both operations work on the flat row slice directly; the vector is only
//     read, through vector.DotSlice and vector.AddScaledTo, so no storage is
//     shared between the two types.
//   - Validation order is fixed: row bounds, then vector length. On error the
//     matrix is untouched. After validateRowOp the length check inside
//     DotSlice/AddScaledTo always passes, so its result is returned as is.

package matrix

import (
	"github.com/katalvlaran/vecmat/vector"
)

const (
	ctxDotRow               = "DotRow"
	ctxAddVectorAndScaleRow = "AddVectorAndScaleRow"
)

// DotRow returns sum over j of M[i,j]*v[j].
// MAIN DESCRIPTION:
//   - Dot product of row i with v; neither the matrix nor v is modified.
//   - Accumulated left to right over ascending j on every kernel build.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//   - ErrDimensionMismatch when v.Len() != Cols().
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Matrix) DotRow(v *vector.Vector, i int) (float32, error) {
	if err := m.validateRowOp(v, i); err != nil {
		return 0, matrixErrorf(ctxDotRow, rowArgs(i, v.Len()), err)
	}

	return v.DotSlice(m.row(i))
}

// AddVectorAndScaleRow performs the fused update M[i,j] += a*v[j] for every column j.
// MAIN DESCRIPTION:
//   - Single pass over row i; v is read, never written.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//   - ErrDimensionMismatch when v.Len() != Cols().
//
// Complexity:
//   - Time O(c), Space O(1).
//
// AI-Hints:
//   - This is the weight-update step of SGD on a single output row:
//     W.AddVectorAndScaleRow(x, k, -lr*delta[k]).
func (m *Matrix) AddVectorAndScaleRow(v *vector.Vector, i int, a float32) error {
	if err := m.validateRowOp(v, i); err != nil {
		return matrixErrorf(ctxAddVectorAndScaleRow, rowArgs(i, v.Len()), err)
	}

	return v.AddScaledTo(m.row(i), a)
}
