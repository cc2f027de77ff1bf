package autodiff

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDomain       = errors.New("domain error: result is not a real number")
	ErrDivideByZero = errors.New("division by zero")
	ErrTypeMismatch = errors.New("operand is neither a Value nor a number")
)

// OpError reports an operation that was rejected during the forward pass.
// No node is recorded when an OpError is returned.
type OpError struct {
	Op      string // Operation name (e.g., "pow", "div")
	Err     error  // One of the sentinel errors above
	Details string // Operand values or types involved
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("autodiff: %s: %v: %s", e.Op, e.Err, e.Details)
	}
	return fmt.Sprintf("autodiff: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *OpError) Unwrap() error {
	return e.Err
}
