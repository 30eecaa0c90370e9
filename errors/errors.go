// Package errors holds the sentinel errors shared across stepsort packages,
// plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrInvalidArgument marks a precondition violation detected while
	// constructing something (an engine, a range, a config value). It is
	// always reported up front, never in the middle of a sort.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNotImplemented = errors.New("not implemented")
	ErrWrongType      = errors.New("wrong type")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use it when several independent checks should all be reported together
// instead of stopping at the first failure.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and an errors.Join of everything otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
