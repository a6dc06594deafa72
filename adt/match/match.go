package match

import (
	"cmp"
	"math"

	"golang.org/x/text/cases"
)

// Func reports whether a and b are equal.
type Func[T any] func(a, b T) bool

// Equal compares with ==.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	if a == b {
		return true
	}
	return Fold(a) == Fold(b)
}

// Fold returns the case-folded form of s. A Caser is stateful, so each
// call builds its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Within returns a Func that treats floats as equal when they differ by at
// most eps. NaN never matches.
func Within[F ~float32 | ~float64](eps F) Func[F] {
	return func(a, b F) bool {
		return math.Abs(float64(a)-float64(b)) <= float64(eps)
	}
}

// By returns a Func that compares the keys extracted by key.
func By[T any, K comparable](key func(T) K) Func[T] {
	return func(a, b T) bool {
		return key(a) == key(b)
	}
}

// Ordered returns a Func that treats a and b as equal when cmp.Compare
// reports 0. Unlike ==, it matches NaN with NaN.
func Ordered[T cmp.Ordered]() Func[T] {
	return func(a, b T) bool {
		return cmp.Compare(a, b) == 0
	}
}

// Not inverts f.
func Not[T any](f Func[T]) Func[T] {
	return func(a, b T) bool {
		return !f(a, b)
	}
}
