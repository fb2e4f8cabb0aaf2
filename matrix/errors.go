// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The matrix package defines no sentinels of its own: both fault kinds are
// the vector package's, re-exported here so callers of either package match
// with errors.Is against the same values.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/vecmat/vector"
)

// NOTE ON WRAPPING
// ----------------
// Public methods wrap at the detection site with
// "Matrix.<method>(args): %w"; validators return the bare sentinel.

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrDimensionMismatch indicates that a vector's length differs from Cols().
	ErrDimensionMismatch = vector.ErrDimensionMismatch
)

// matrixErrorf wraps err with a uniform Matrix context.
func matrixErrorf(method string, args string, err error) error {
	return fmt.Errorf("Matrix.%s(%s): %w", method, args, err)
}

// cellArgs renders (row, col) coordinates for error context.
func cellArgs(row, col int) string {
	return fmt.Sprintf("%d,%d", row, col)
}

// rowArgs renders a row index and vector length for error context.
func rowArgs(row, n int) string {
	return fmt.Sprintf("row=%d, len=%d", row, n)
}
