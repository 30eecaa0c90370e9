package consumer

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrStopped is returned by a consumer that wants the sort to end early.
// Drain treats it as a clean stop, not a failure.
var ErrStopped = errors.New("consumer stopped the sort")

// ErrCorrupted is returned by Verifier when a snapshot is not a permutation
// of the input.
var ErrCorrupted = errors.New("snapshot is not a permutation of the input")

// Consumer receives snapshots from Drain. Step counts from 1. The snapshot
// is the live buffer and must not be retained or modified.
type Consumer[T any] interface {
	Consume(ctx context.Context, step int, snapshot []T) error
}

// Func adapts a plain function to the Consumer interface.
type Func[T any] func(ctx context.Context, step int, snapshot []T) error

func (f Func[T]) Consume(ctx context.Context, step int, snapshot []T) error {
	return f(ctx, step, snapshot)
}

// Counter counts snapshots. It is the explicit replacement for a global
// "number of operations" counter.
type Counter struct {
	count int
}

func (c *Counter) Consume(_ context.Context, _ int, _ []int) error {
	c.count++

	return nil
}

// Count returns the number of snapshots seen so far.
func (c *Counter) Count() int {
	return c.count
}

// Counting returns a Consumer for any element type that adds to c.
func Counting[T any](c *Counter) Consumer[T] {
	return Func[T](func(_ context.Context, _ int, _ []T) error {
		c.count++

		return nil
	})
}

// Recorder keeps a private copy of every snapshot, in order.
type Recorder[T any] struct {
	snapshots [][]T
}

func (r *Recorder[T]) Consume(_ context.Context, _ int, snapshot []T) error {
	r.snapshots = append(r.snapshots, slices.Clone(snapshot))

	return nil
}

// Snapshots returns the recorded copies.
func (r *Recorder[T]) Snapshots() [][]T {
	return r.snapshots
}

// Verifier checks that every snapshot holds exactly the values of the
// original input, i.e. that the engine never loses or duplicates an element.
//
// Each check is linear in the buffer length, so on the quadratic engines a
// verified run costs a factor of n more than an unverified one. Callers
// running large inputs should leave it off.
type Verifier[T comparable] struct {
	length  int
	want    map[T]int
	scratch map[T]int
}

// NewVerifier counts the values of input; call it before the sort starts.
func NewVerifier[T comparable](input []T) *Verifier[T] {
	v := &Verifier[T]{
		length:  len(input),
		want:    make(map[T]int, len(input)),
		scratch: make(map[T]int, len(input)),
	}

	for _, x := range input {
		v.want[x]++
	}

	return v
}

func (v *Verifier[T]) Consume(_ context.Context, step int, snapshot []T) error {
	if !v.Check(snapshot) {
		return fmt.Errorf("%w: step %d", ErrCorrupted, step)
	}

	return nil
}

// Check reports whether s holds exactly the values given to NewVerifier.
func (v *Verifier[T]) Check(s []T) bool {
	if len(s) != v.length {
		return false
	}

	clear(v.scratch)

	for _, x := range s {
		v.scratch[x]++
	}

	return maps.Equal(v.want, v.scratch)
}

func consumeAll[T any](ctx context.Context, consumers []Consumer[T], step int, snapshot []T) error {
	for _, c := range consumers {
		if err := c.Consume(ctx, step, snapshot); err != nil {
			return err
		}
	}

	return nil
}
