package shared

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a normalized, validated email address. A zero Email never
// leaves NewEmail on the success path.
type Email struct {
	value string
}

// NewEmail trims and lowercases the input, then validates its shape.
func NewEmail(value string) (Email, error) {
	if strings.TrimSpace(value) == "" {
		return Email{}, fmt.Errorf("%w: email cannot be empty", ErrValidation)
	}
	normalized := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(normalized) {
		return Email{}, fmt.Errorf("%w: %q is not a valid email", ErrValidation, value)
	}
	return Email{value: normalized}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }
