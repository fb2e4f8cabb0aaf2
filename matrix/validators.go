// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the bounds and length checks used by every method.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

import (
	"github.com/katalvlaran/vecmat/vector"
)

// validateRow ensures 0 <= i < Rows(); a nil matrix has no rows.
func (m *Matrix) validateRow(i int) error {
	if i < 0 || i >= m.Rows() {
		return ErrOutOfRange
	}
	return nil
}

// validateCell ensures (i, j) lies inside the matrix.
func (m *Matrix) validateCell(i, j int) error {
	if err := m.validateRow(i); err != nil {
		return err
	}
	if j < 0 || j >= m.Cols() {
		return ErrOutOfRange
	}
	return nil
}

// validateVecLen ensures v has exactly Cols() elements.
// A nil vector has length 0.
func (m *Matrix) validateVecLen(v *vector.Vector) error {
	if v.Len() != m.Cols() {
		return ErrDimensionMismatch
	}
	return nil
}

// validateRowOp is the composite check of DotRow/AddVectorAndScaleRow:
// row bounds first, then vector length.
func (m *Matrix) validateRowOp(v *vector.Vector, i int) error {
	if err := m.validateRow(i); err != nil {
		return err
	}
	return m.validateVecLen(v)
}
