package stepsort

import "iter"

// engine carries the state every algorithm shares: the buffer it mutates,
// the order it sorts by, and the sink it reports snapshots to.
//
// Every algorithm method returns false as soon as the sink asks it to stop,
// and its callers unwind without doing any more work. A method only calls
// emit between whole operations, so the buffer is always a permutation of
// its input when control leaves the engine.
type engine[T any] struct {
	buf   []T
	less  func(a, b T) bool
	yield func([]T) bool
}

func (e *engine[T]) emit() bool {
	return e.yield(e.buf)
}

// steps returns the push form of the engine selected by kind. For the ranged
// kinds, start and end bound the sort; the others always cover the whole
// buffer.
func steps[T any](kind Kind, buf []T, less func(a, b T) bool, start, end int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		e := &engine[T]{buf: buf, less: less, yield: yield}

		switch kind {
		case Bubble:
			e.bubble()
		case Insertion:
			e.insertion()
		case Merge:
			e.mergeSort(start, end)
		case Quick:
			e.quickSort(start, end)
		case Selection:
			e.selection()
		}
	}
}
