// Package errors defines the sentinel errors shared across the interview
// module. Call sites wrap them with fmt.Errorf("%w: ...") and callers
// discriminate with errors.Is.
package errors

import (
	"fmt"
)

var (
	ErrNotFound              = fmt.Errorf("not found")
	ErrDuplicateID           = fmt.Errorf("duplicate id")
	ErrInvalidInput          = fmt.Errorf("invalid input")
	ErrInvalidTransition     = fmt.Errorf("invalid status transition")
	ErrInactiveEntity        = fmt.Errorf("entity is inactive")
	ErrInactiveInterview     = fmt.Errorf("interview is not active")
	ErrIncompatibleCharacter = fmt.Errorf("character is not compatible with company type")
)
