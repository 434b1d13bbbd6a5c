package dialogkit

import (
	"errors"
	"fmt"
)

// Common errors. Controller operations never fail — a missing capability
// degrades to a no-op — so these surface only from configuration and
// driver construction, or from backends reporting why an activation could
// not complete.
var (
	ErrNoDisplay     = errors.New("no display capability")
	ErrUnknownDriver = errors.New("unknown display driver")
	ErrNotSupported  = errors.New("operation not supported")
	ErrCancelled     = errors.New("dialog cancelled")
	ErrDetached      = errors.New("trigger detached")
)

// OpError records an error together with the operation and driver that
// caused it
type OpError struct {
	Op     string
	Driver string
	Err    error
}

// Error implements the error interface
func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Driver, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *OpError) Unwrap() error {
	return e.Err
}

// IsCancelled reports whether an error indicates that the user dismissed
// the dialog without a pick
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsNotSupported reports whether an error indicates an operation the
// backend cannot perform
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
