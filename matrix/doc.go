// Package matrix provides Matrix, a fixed-shape, owned, mutable 2D array of
// float32 values in row-major layout.
//
// The matrix package provides:
//
//   - Safe element access (At, Set) returning ErrOutOfRange instead of
//     panicking.
//   - Row/vector coupling: DotRow computes row(i)·v, AddVectorAndScaleRow
//     performs the fused update row(i) += a·v in a single pass.
//   - Value semantics: Clone, Row and Values copy; no method exposes the
//     backing buffer.
//
// Element (i, j) is stored at offset i*Cols() + j. Zero rows or zero columns
// are legal shapes.
//
// Errors are the two sentinels shared with the vector package
// (ErrOutOfRange, ErrDimensionMismatch), wrapped with the method name and
// arguments; a row index is validated before the vector length.
package matrix
