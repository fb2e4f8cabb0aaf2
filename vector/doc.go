// Package vector provides Vector, a fixed-length, owned, mutable sequence of
// float32 values.
//
// What & Why:
//
//	A Vector owns its storage outright: constructors copy their input, Values
//	returns a copy, and nothing hands out the backing slice. Two vectors
//	never alias, so value-returning operations (Add, Scale) and in-place ones
//	(AddAssign, ScaleAssign, AddVectorScaled) have no hidden coupling.
//
// Errors:
//
//	Every user-triggered fault is returned, never panicked, as one of two
//	sentinels: ErrOutOfRange (an index outside [0, Len())) and
//	ErrDimensionMismatch (two operands of different lengths). Match them with
//	errors.Is; the returned error carries the method name and arguments.
//
// Complexity:
//
//	New, Clone, Add, Scale: O(n) time and memory.
//	At, Set, Len: O(1).
//	Zero, Norm, Argmax, Dot, AddAssign, ScaleAssign, AddVectorScaled: O(n)
//	time, no allocation.
//
// A single Vector is not safe for concurrent mutation.
package vector
