package shared

import (
	"fmt"
	"regexp"
	"strings"
)

// SKU format: uppercase letters, digits and hyphens, 4-20 characters,
// first and last character alphanumeric.
var skuPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{2,18}[A-Z0-9]$`)

// ProductSku is a normalized stock keeping unit identifier.
type ProductSku struct {
	value string
}

// NewProductSku trims and uppercases the input, then validates it
// against the SKU format. Input is stored in its normalized form.
func NewProductSku(value string) (ProductSku, error) {
	if strings.TrimSpace(value) == "" {
		return ProductSku{}, fmt.Errorf("%w: SKU cannot be empty", ErrValidation)
	}
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if !skuPattern.MatchString(normalized) {
		return ProductSku{}, fmt.Errorf("%w: %q is not a valid SKU (letters/digits/hyphens, 4-20 chars)", ErrValidation, value)
	}
	return ProductSku{value: normalized}, nil
}

func (s ProductSku) Value() string  { return s.value }
func (s ProductSku) String() string { return s.value }
