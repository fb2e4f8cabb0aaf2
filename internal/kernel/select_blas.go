//go:build !purego

package kernel

var impl implementation = blas{}
