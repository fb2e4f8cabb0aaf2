// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// These two sentinels are the only fault kinds of the module; the matrix
// package re-exports them. Public methods return them wrapped with call-site
// context, tests check them via errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that an index is outside [0, Len()).
	// Argmax on an empty vector reports it too.
	ErrOutOfRange = errors.New("vecmat: index out of range")

	// ErrDimensionMismatch indicates two operands whose lengths differ.
	ErrDimensionMismatch = errors.New("vecmat: dimension mismatch")
)

// vectorErrorf wraps a sentinel with a "Vector.<method>(args)" prefix.
func vectorErrorf(method string, args string, err error) error {
	return fmt.Errorf("Vector.%s(%s): %w", method, args, err)
}

// mismatchArgs renders a length pair for dimension errors.
func mismatchArgs(self, other int) string {
	return fmt.Sprintf("len=%d, other=%d", self, other)
}
