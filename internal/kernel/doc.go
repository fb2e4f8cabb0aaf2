/*
Package kernel holds the flat []float32 loops shared by the vector and matrix
packages. Two implementations are available:

	- blas32 (gonum blas32, the default)
	- generic (plain Go loops, selected with the purego build tag)

Only the element-wise kernels (Axpy, Scal) dispatch; the reductions (Dot,
SumSquares) are fixed left folds on every build. Callers validate lengths
before calling in; the kernels panic on mismatch.
*/
package kernel
