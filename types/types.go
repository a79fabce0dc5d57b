// Package types defines the generic type constraints shared across polyclip's packages.
//
// Today that is just SignedNumber, which restricts generic numeric helpers (numeric.Abs and
// friends) to signed integer and floating-point types.
package types
