package listview

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrItemNotFound indicates an item is not in the list.
	ErrItemNotFound = errors.New("item not in list")

	// ErrQuit indicates the window was closed while a scene was running.
	// This is normal flow control, not a failure.
	ErrQuit = errors.New("quit requested")
)

// InfrastructureError represents a framework-level failure: SDL could not
// start, a config file could not be read, a device could not be opened.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_config")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("listview: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("listview: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit checks if an error indicates the window was closed.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
