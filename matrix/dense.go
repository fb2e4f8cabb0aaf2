// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loops deterministic (fixed i then j order).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/Values: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecmat/internal/kernel"
	"github.com/katalvlaran/vecmat/vector"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a row-major float32 matrix.
//   - rows, cols hold the shape, fixed at construction.
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
type Matrix struct {
	rows, cols int       // shape (>= 0)
	data       []float32 // contiguous row-major storage, never shared
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Allocate a zero-filled flat buffer of rows*cols elements.
//
// Behavior highlights:
//   - Zero rows or zero columns are legal and yield an empty buffer.
//   - Negative dimensions, or a rows*cols that overflows int, are a
//     programmer error and panic.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %dx%d", rows, cols))
	}
	if cols != 0 && rows > math.MaxInt/cols {
		panic(fmt.Sprintf("matrix: dimensions %dx%d overflow int", rows, cols))
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols), // make zero-fills deterministically
	}
}

// Rows returns the row count. A nil *Matrix reads as 0×0.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the column count. A nil *Matrix reads as 0×0.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// elems returns the storage, treating a nil receiver as empty.
func (m *Matrix) elems() []float32 {
	if m == nil {
		return nil
	}
	return m.data
}

// offset returns the row-major offset of a validated (i, j).
func (m *Matrix) offset(i, j int) int { return i*m.cols + j }

// row returns the backing sub-slice of row i; i must be validated.
func (m *Matrix) row(i int) []float32 {
	base := i * m.cols
	return m.data[base : base+m.cols]
}

// At returns the value at (i, j).
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()) or j outside [0, Cols()).
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float32, error) {
	if err := m.validateCell(i, j); err != nil {
		return 0, matrixErrorf(ctxAt, cellArgs(i, j), err)
	}

	return m.data[m.offset(i, j)], nil
}

// Set stores x at (i, j).
//
// Errors:
//   - ErrOutOfRange when indices are invalid; nothing is written.
//
// Complexity: O(1).
func (m *Matrix) Set(i, j int, x float32) error {
	if err := m.validateCell(i, j); err != nil {
		return matrixErrorf(ctxSet, cellArgs(i, j), err)
	}
	m.data[m.offset(i, j)] = x

	return nil
}

// Zero sets every element to 0 in place.
func (m *Matrix) Zero() {
	kernel.Fill(m.elems(), 0)
}

// Row returns a copy of row i as a Vector of length Cols().
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (m *Matrix) Row(i int) (*vector.Vector, error) {
	if err := m.validateRow(i); err != nil {
		return nil, matrixErrorf(ctxRow, strconv.Itoa(i), err)
	}

	return vector.FromSlice(m.row(i)), nil
}

// Clone returns a deep copy: same shape, new buffer.
// Cloning a nil *Matrix yields an empty 0×0 matrix.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.Rows(), cols: m.Cols(), data: m.Values()}
}

// Values returns a copy of the row-major buffer.
func (m *Matrix) Values() []float32 {
	cp := make([]float32, len(m.elems()))
	copy(cp, m.elems())

	return cp
}

// String renders one "[a, b, ...]" line per row for diagnostics.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j, x := range m.row(i) {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
