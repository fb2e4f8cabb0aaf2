// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
	"github.com/stretchr/testify/require"
)

// fromRows builds a matrix from row literals or fails the test.
// All rows must have the same length.
func fromRows(t testing.TB, rows ...[]float32) *matrix.Matrix {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := matrix.New(len(rows), cols)
	for i, r := range rows {
		require.Len(t, r, cols)
		for j, x := range r {
			require.NoError(t, m.Set(i, j, x))
		}
	}
	return m
}

// constVec returns a vector of length n with every element x.
func constVec(n int, x float32) *vector.Vector {
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = x
	}
	return vector.FromSlice(vals)
}

// mustAt reads (i, j) or fails the test.
func mustAt(t testing.TB, m *matrix.Matrix, i, j int) float32 {
	t.Helper()
	x, err := m.At(i, j)
	require.NoError(t, err)
	return x
}

// rowValues returns a copy of row i or fails the test.
func rowValues(t testing.TB, m *matrix.Matrix, i int) []float32 {
	t.Helper()
	r, err := m.Row(i)
	require.NoError(t, err)
	return r.Values()
}
