package shared

import (
	"errors"
	"fmt"
)

// Two failure kinds cross the domain boundary: ErrValidation for
// out-of-contract arguments and ErrInvalidState for operations the
// aggregate's current state forbids. Callers match with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
)

var (
	ErrCurrencyMismatch  = fmt.Errorf("%w: currency mismatch", ErrInvalidState)
	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrInvalidState)
	ErrDuplicateItem     = fmt.Errorf("%w: duplicate item", ErrInvalidState)
	ErrNotFound          = fmt.Errorf("%w: not found", ErrInvalidState)
	ErrAlreadyExists     = fmt.Errorf("%w: already exists", ErrInvalidState)
)
