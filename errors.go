package blazebook

import (
	"errors"
	"fmt"
)

// ErrEmptyListing is returned by Cheapest when the results table has no rows.
var ErrEmptyListing = errors.New("results listing is empty")

// NavigationError reports a navigation that did not complete within budget.
// It is fatal to the current scenario step; nothing recovers from it locally.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ElementNotFoundError reports an interaction target that could not be
// resolved, e.g. a select with no option matching the requested value.
type ElementNotFoundError struct {
	Selector string
	Err      error
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element %q: %v", e.Selector, e.Err)
}

func (e *ElementNotFoundError) Unwrap() error { return e.Err }

// IndexOutOfRangeError reports an index-based selection outside [0, Count).
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Count)
}
