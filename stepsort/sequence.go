package stepsort

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/amp-labs/stepsort/errors"
	"github.com/amp-labs/stepsort/sortable"
)

// Sequence is a lazy, finite, non-restartable stream of snapshots produced
// by one engine over one buffer. The engine only runs while Next is being
// called, and it is suspended at the last snapshot in between.
//
// A Sequence that is neither drained nor stopped keeps its suspended engine
// alive, so callers should always Stop it (Stop after exhaustion is a no-op).
type Sequence[T any] struct {
	kind Kind
	next func() ([]T, bool)
	stop func()
}

func newSequence[T any](kind Kind, seq iter.Seq[[]T]) *Sequence[T] {
	next, stop := iter.Pull(seq)

	return &Sequence[T]{
		kind: kind,
		next: next,
		stop: stop,
	}
}

// Kind returns the engine this sequence runs.
func (s *Sequence[T]) Kind() Kind {
	return s.kind
}

// Next resumes the engine until its next snapshot. Once the sort is complete
// (or the sequence was stopped) it returns nil, false, and keeps doing so.
//
// The returned slice is the live buffer. Do not keep it past the next call.
func (s *Sequence[T]) Next() ([]T, bool) {
	snapshot, ok := s.next()
	if !ok {
		return nil, false
	}

	return snapshot, true
}

// Stop abandons the sort. The buffer is left as it was at the last snapshot,
// a permutation of the original values. Stop is idempotent.
func (s *Sequence[T]) Stop() {
	s.stop()
}

// All returns the remaining snapshots as a range-over-func iterator.
// Breaking out of the loop stops the sequence.
func (s *Sequence[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		defer s.Stop()

		for {
			snapshot, ok := s.Next()
			if !ok || !yield(snapshot) {
				return
			}
		}
	}
}

// New sorts buf in its natural ascending order. Merge and Quick cover the
// whole buffer. Buffers of length 0 or 1 give an empty sequence.
func New[T cmp.Ordered](kind Kind, buf []T) (*Sequence[T], error) {
	return NewFunc(kind, buf, cmp.Less[T])
}

// NewSortable sorts buf by its elements' LessThan method.
func NewSortable[T sortable.Sortable[T]](kind Kind, buf []T) (*Sequence[T], error) {
	return NewFunc(kind, buf, sortable.Less[T])
}

// NewFunc sorts buf by less, which must be a strict weak ordering.
func NewFunc[T any](kind Kind, buf []T, less func(a, b T) bool) (*Sequence[T], error) {
	if err := checkEngine(kind, less); err != nil {
		return nil, err
	}

	return newSequence(kind, steps(kind, buf, less, 0, len(buf)-1)), nil
}

// NewRange sorts only the inclusive range [start, end] of buf, leaving the
// rest untouched. It accepts Merge and Quick only. An end before start is a
// valid empty range, but start itself must be an index into buf.
func NewRange[T cmp.Ordered](kind Kind, buf []T, start, end int) (*Sequence[T], error) {
	return NewRangeFunc(kind, buf, start, end, cmp.Less[T])
}

// NewRangeFunc is NewRange with a caller-supplied ordering.
func NewRangeFunc[T any](kind Kind, buf []T, start, end int, less func(a, b T) bool) (*Sequence[T], error) {
	if err := checkEngine(kind, less); err != nil {
		return nil, err
	}

	if !kind.Ranged() {
		return nil, fmt.Errorf("%w: %s sort cannot run over a range", errors.ErrInvalidArgument, kind)
	}

	if err := checkRange(len(buf), start, end); err != nil {
		return nil, err
	}

	return newSequence(kind, steps(kind, buf, less, start, end)), nil
}

func checkEngine[T any](kind Kind, less func(a, b T) bool) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown sort kind %d", errors.ErrInvalidArgument, int(kind))
	}

	if less == nil {
		return fmt.Errorf("%w: nil less function", errors.ErrInvalidArgument)
	}

	return nil
}

func checkRange(length, start, end int) error {
	switch {
	case start < 0:
		return fmt.Errorf("%w: negative range start %d", errors.ErrInvalidArgument, start)
	case start > length-1:
		return fmt.Errorf("%w: range start %d out of bounds for length %d",
			errors.ErrInvalidArgument, start, length)
	case end > length-1:
		return fmt.Errorf("%w: range end %d out of bounds for length %d",
			errors.ErrInvalidArgument, end, length)
	default:
		return nil
	}
}
