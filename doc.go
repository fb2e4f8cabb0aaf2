// Package vecmat is a small dense linear-algebra toolkit over float32:
// an owned Vector and a row-major Matrix, with just enough arithmetic for
// gradient-descent style training loops.
//
// Under the hood, everything is organized under two subpackages:
//
//	vector/ - Vector: indexed access, Zero, Norm, Argmax, Add/AddAssign,
//	          Scale/ScaleAssign, AddVectorScaled, Dot, Clone
//	matrix/ - Matrix: indexed access, Row, Zero, Clone, DotRow and the fused
//	          row update AddVectorAndScaleRow
//
// Both report exactly two fault kinds, ErrOutOfRange and ErrDimensionMismatch,
// as wrapped sentinel errors; nothing panics on bad indices or lengths.
//
// Kernels dispatch to gonum blas32 by default; build with -tags purego for
// plain Go loops.
//
//	go get github.com/katalvlaran/vecmat
package vecmat
