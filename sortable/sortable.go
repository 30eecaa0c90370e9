package sortable

import (
	"github.com/amp-labs/stepsort/compare"
)

// Sortable is implemented by types that carry their own total order.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less adapts a Sortable type to the less-function shape the sort engines
// take, so stepsort.NewSortable can be used without writing a closure.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}
