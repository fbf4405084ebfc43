package fixcap

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by Violation panics.
// Use errors.Is against a recovered Violation to classify a fault.
var (

	// ErrCapacity indicates an attempt to grow a container past its fixed capacity.
	// Capacity is set at construction and never changes; callers must pre-check
	// Len() < Cap() before appending.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrOutOfRange indicates an index at or beyond the live length of a container.
	// Only indices in [0, Len()) are addressable.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty indicates an operation that requires at least one live element
	// (Back, Front, RemoveLast on a Vector) was called on an empty container.
	ErrEmpty = errors.New("container is empty")

	// ErrBadCapacity indicates a constructor was given a non-positive capacity.
	// Every container must be able to hold at least one element.
	ErrBadCapacity = errors.New("capacity must be positive")
)

// Violation describes a contract violation: a capacity overrun, an
// out-of-range index, or an operation on an empty container. Violations are
// programmer errors, not runtime conditions, so they are delivered by
// panicking with a *Violation rather than through an error return.
//
// With the fixcap_nocheck build tag the checks are compiled out and the
// offending operation becomes a no-op; behavior of the calling code is then
// unspecified, but the container never grows past its capacity.
//
// Example:
//
//	defer func() {
//	    if v, ok := recover().(*Violation); ok && errors.Is(v, fixcap.ErrCapacity) {
//	        // append past capacity
//	    }
//	}()
type Violation struct {
	// Op is the operation that was being performed (e.g., "Append", "At").
	Op string

	// Index is the offending index or requested size, where applicable.
	Index int

	// Len is the live length of the container at the time of the violation.
	Len int

	// Cap is the fixed capacity of the container.
	Cap int

	// Err is the sentinel classifying the violation.
	Err error
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("fixcap: %s: %v (index=%d len=%d cap=%d)", v.Op, v.Err, v.Index, v.Len, v.Cap)
}

// Unwrap returns the sentinel error.
// This allows errors.Is() to work with recovered violations.
func (v *Violation) Unwrap() error {
	return v.Err
}

// fault reports a contract violation. When checks are enabled (the default)
// it panics with the violation; with the fixcap_nocheck build tag it returns
// and the caller bails out of the offending operation.
func fault(v *Violation) {
	if checksEnabled {
		panic(v)
	}
}

// IsCapacityViolation returns true if the recovered value is a Violation
// caused by exceeding a container's fixed capacity.
//
// Example:
//
//	defer func() {
//	    if fixcap.IsCapacityViolation(recover()) {
//	        // handle programmer error during testing
//	    }
//	}()
func IsCapacityViolation(r any) bool {
	v, ok := r.(*Violation)
	return ok && errors.Is(v, ErrCapacity)
}

// IsRangeViolation returns true if the recovered value is a Violation caused
// by an out-of-range index.
func IsRangeViolation(r any) bool {
	v, ok := r.(*Violation)
	return ok && errors.Is(v, ErrOutOfRange)
}
