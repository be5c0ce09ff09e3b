package helper

import (
	"errors"
	"fmt"
)

// NewError wraps err with the operation that failed.
// A nil err still produces a non-nil error so callers can wrap unconditionally.
func NewError(operation string, err error) error {
	if err == nil {
		return errors.New("failed to " + operation)
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
