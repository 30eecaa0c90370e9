// Package compare provides equality and ordering checks over values and slices.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// IsSortedFunc reports whether s is in ascending order under less.
// Equal neighbours are allowed.
func IsSortedFunc[T any](s []T, less func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}

// SameElements reports whether a and b hold the same multiset of values,
// i.e. one is a permutation of the other.
func SameElements[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[T]int, len(a))

	for _, v := range a {
		counts[v]++
	}

	for _, v := range b {
		counts[v]--

		if counts[v] < 0 {
			return false
		}
	}

	return true
}
