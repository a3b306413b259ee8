package nums

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance comparisons.
//
// Every operator takes the tolerance between the two operands, (x, tol, y),
// so a call reads as "x equals-within-tol y".
// Two values compared within one context (a set, a sorted slice) must always
// use the same tolerance. Tolerance equality is reflexive and symmetric but
// not transitive: a≈b and b≈c does not imply a≈c.

// EqualsTol reports whether |x-y| <= tol.
// A negative or NaN tolerance matches nothing. Identical infinities are
// equal at any valid tolerance, opposite ones never are.
func EqualsTol(x, tol, y float64) bool {
	if !(tol >= 0) {
		return false
	}
	return scalar.EqualWithinAbs(x, y, tol)
}

// EqualsAutoTol compares x against |x*1e-6| using y as the tolerance.
// The argument order is significant and is kept for compatibility with
// existing callers: the second argument is the tolerance slot.
func EqualsAutoTol(x, y float64) bool {
	return EqualsTol(x, y, math.Abs(x*1e-6))
}

func GreaterThanTol(x, tol, y float64) bool {
	return x > y && !EqualsTol(x, tol, y)
}

func GreaterThanOrEqualsTol(x, tol, y float64) bool {
	return x > y || EqualsTol(x, tol, y)
}

func LessThanTol(x, tol, y float64) bool {
	return x < y && !EqualsTol(x, tol, y)
}

func LessThanOrEqualsTol(x, tol, y float64) bool {
	return x < y || EqualsTol(x, tol, y)
}

// CompareTol returns 0 if x and y are equal within tol, -1 if x < y, +1 otherwise.
//
// It is not a strict weak ordering: sorting a slice whose elements chain
// within tol may produce different orders for the same input.
func CompareTol(x, tol, y float64) int {
	if EqualsTol(x, tol, y) {
		return 0
	}
	if x < y {
		return -1
	}
	return 1
}
