// Package fuzzy provides floating-point comparison predicates that avoid
// exact-equality pitfalls: absolute epsilon for values near zero, relative
// epsilon elsewhere, defined NaN/infinity handling, and cross-width
// comparison that never reports inequality solely because the operands have
// different precisions.
//
// For the reasoning behind the absolute/relative split see
// http://randomascii.wordpress.com/2012/02/25/comparing-floating-point-numbers-2012-edition/
package fuzzy

import "math"

// DefaultEpsilonMultiplier scales the machine epsilon to obtain the default
// relative tolerance used by Close. It is fixed at build time; the default
// is safe in all meaningful use cases.
const DefaultEpsilonMultiplier = 10

// Machine epsilons per float width.
const (
	epsilon32 = float32(0x1p-23)
	epsilon64 = float64(0x1p-52)
)

// Float is the set of floating-point types accepted by the fuzzy
// comparisons.
type Float interface {
	float32 | float64
}

// Real is the set of numeric types accepted by the sign predicates and
// CloseToZero. Floating types are compared fuzzily, integer types exactly.
type Real interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Equal performs exact comparison as (a <= b) && (a >= b), which for
// floating types is equivalent to == without tripping compiler and linter
// warnings about float equality. Most of the time you want Close instead.
func Equal[T Real](a, b T) bool {
	return (a <= b) && (a >= b)
}

// CloseTol performs fuzzy comparison with explicit tolerances. It returns
// false if either operand is NaN; if either operand is infinite the
// comparison falls back to Equal. Otherwise the operands are close if they
// differ by at most absoluteEpsilon (which handles near-zero magnitudes),
// or by at most max(|a|, |b|) * relativeEpsilon.
func CloseTol[T Float](a, b, absoluteEpsilon, relativeEpsilon T) bool {
	// NaN never compares close, not even to itself.
	if a != a || b != b {
		return false
	}

	if isInf(a) || isInf(b) {
		return Equal(a, b)
	}

	diff := abs(a - b)
	if diff <= absoluteEpsilon {
		return true
	}

	return diff <= max(abs(a), abs(b))*relativeEpsilon
}

// Close performs fuzzy comparison with the default tolerances for the
// operand width: the machine epsilon as the absolute tolerance and the
// machine epsilon times DefaultEpsilonMultiplier as the relative tolerance.
//
// Example:
//
//	fuzzy.Close(0.1+0.2, 0.3) // true
func Close[T Float](a, b T) bool {
	eps := epsilon[T]()
	return CloseTol(a, b, eps, eps*DefaultEpsilonMultiplier)
}

// CloseMixed compares operands of different widths by narrowing the wider
// operand to float32 and comparing at single precision. Narrowing, rather
// than promoting the float32 operand, keeps representation-width error from
// being reported as inequality: float64(0.1) and float32(0.1) differ well
// beyond double-precision tolerance but are the same number at single
// precision. The comparison is symmetric, so one argument order suffices.
func CloseMixed(wide float64, narrow float32) bool {
	return Close(float32(wide), narrow)
}

// CloseToZero reports whether x is fuzzily close to zero. Floating types
// delegate to Close against zero of the same width; integer types compare
// exactly.
func CloseToZero[T Real](x T) bool {
	switch v := any(x).(type) {
	case float32:
		return Close(v, 0)
	case float64:
		return Close(v, 0)
	default:
		return x == 0
	}
}

// Positive reports whether x is strictly positive and not fuzzily close to
// zero. Positive and Negative are never both true for the same value.
func Positive[T Real](x T) bool {
	return x > 0 && !CloseToZero(x)
}

// Negative reports whether x is strictly negative and not fuzzily close to
// zero.
func Negative[T Real](x T) bool {
	return x < 0 && !CloseToZero(x)
}

// epsilon returns the machine epsilon for the float width T.
func epsilon[T Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(epsilon32)
	}
	return T(epsilon64)
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func isInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}
