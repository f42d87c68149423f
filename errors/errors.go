// Package errors provides error accumulation for call sites that cannot
// return an error directly, such as comparison callbacks handed to the
// sort package.
package errors

import "errors"

// Collection accumulates errors and hands them back as one. It is not
// safe for concurrent use; a collection belongs to a single operation.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored, so
// callers can funnel every result through Add without checking first.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear empties the collection so it can be reused.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether anything has been collected.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil for an empty collection, the error itself when
// exactly one was collected, and an errors.Join of all of them otherwise.
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
