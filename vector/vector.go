// SPDX-License-Identifier: MIT

// Package vector - owned float32 storage & safe accessors.
//
// Purpose:
//   - Keep a contiguous []float32 whose length never changes after New.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep reductions deterministic (ascending index order, no reordering).

package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecmat/internal/kernel"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxArgmax = "Argmax"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a fixed-length float32 vector.
// data is owned exclusively by the Vector; len(data) is the length.
type Vector struct {
	data []float32 // contiguous storage, never shared
}

var _ fmt.Stringer = (*Vector)(nil)

// New creates a zero vector of the given length.
// Zero length is legal. A negative length panics, as it does for make.
// Complexity: O(n) time and memory.
func New(length int) *Vector {
	if length < 0 {
		panic("vector: negative length " + strconv.Itoa(length))
	}

	return &Vector{data: make([]float32, length)}
}

// FromSlice creates a vector holding a copy of values.
// Later writes to values are not observed by the vector.
// Complexity: O(n).
func FromSlice(values []float32) *Vector {
	data := make([]float32, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// elems returns the storage, treating a nil receiver as empty.
func (v *Vector) elems() []float32 {
	if v == nil {
		return nil
	}
	return v.data
}

// Len returns the number of elements. A nil *Vector has length 0.
func (v *Vector) Len() int { return len(v.elems()) }

// checkIndex reports ErrOutOfRange unless 0 <= i < Len().
func (v *Vector) checkIndex(i int) error {
	if i < 0 || i >= v.Len() {
		return ErrOutOfRange
	}
	return nil
}

// At returns the element at index i.
//
// Errors:
//   - ErrOutOfRange when i < 0 or i >= Len().
//
// Complexity: O(1).
func (v *Vector) At(i int) (float32, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, vectorErrorf(ctxAt, strconv.Itoa(i), err)
	}

	return v.data[i], nil
}

// Set stores x at index i.
//
// Errors:
//   - ErrOutOfRange when i < 0 or i >= Len().
//
// Complexity: O(1).
func (v *Vector) Set(i int, x float32) error {
	if err := v.checkIndex(i); err != nil {
		return vectorErrorf(ctxSet, strconv.Itoa(i), err)
	}
	v.data[i] = x

	return nil
}

// Zero sets every element to 0 in place.
func (v *Vector) Zero() {
	kernel.Fill(v.elems(), 0)
}

// Clone returns an independent copy with identical elements.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	return FromSlice(v.elems())
}

// Values returns a copy of the elements in index order.
func (v *Vector) Values() []float32 {
	out := make([]float32, v.Len())
	copy(out, v.elems())

	return out
}

// Norm returns the Euclidean norm sqrt(sum x_i^2).
// The sum is a left fold over ascending indices, so the result does not
// depend on the kernel build. An empty vector has norm 0.
// Complexity: O(n), no allocation.
func (v *Vector) Norm() float32 {
	return float32(math.Sqrt(float64(kernel.SumSquares(v.elems()))))
}

// Argmax returns the index of the first occurrence of the largest element.
// MAIN DESCRIPTION:
//   - Scan indices in ascending order starting from index 0 as the current
//     maximum; replace it only on a strictly greater element, so ties keep
//     the earliest index.
//
// Behavior highlights:
//   - NaN never compares greater; a NaN at index 0 therefore stays the maximum.
//
// Errors:
//   - ErrOutOfRange on an empty vector (there is no index 0 to start from).
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector) Argmax() (int, error) {
	data := v.elems()
	if len(data) == 0 {
		return 0, vectorErrorf(ctxArgmax, "len=0", ErrOutOfRange)
	}

	best, imax := data[0], 0
	for i := 1; i < len(data); i++ {
		if data[i] > best {
			best, imax = data[i], i
		}
	}

	return imax, nil
}

// String renders the vector as "[x0, x1, ...]" for diagnostics.
func (v *Vector) String() string {
	var b strings.Builder
	data := v.elems()
	b.WriteString(_fmtOpen)
	for i, x := range data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
