package cluster

import (
	"errors"
	"fmt"
)

// Common cluster errors that can be checked with errors.Is().
var (
	// ErrNoEndpoints is returned when an endpoint set would be empty.
	ErrNoEndpoints = errors.New("endpoints list must not be empty")

	// ErrIndexOutOfRange is returned when a view operation addresses a
	// position outside the current view.
	ErrIndexOutOfRange = errors.New("endpoint index out of range")
)

// IndexOutOfRangeError is returned by UpstreamEndpoints.Keep when the
// requested position does not exist in the current view.
type IndexOutOfRangeError struct {
	// Index is the requested view-relative position.
	Index int

	// Size is the number of endpoints that were in view.
	Size int
}

// Error implements the error interface.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("endpoint index %d out of range for view of %d", e.Index, e.Size)
}

// Is implements error matching for errors.Is().
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
