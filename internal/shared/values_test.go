package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes and round-trips", func(t *testing.T) {
		e, err := NewEmail("  Alice.Tan@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "alice.tan@example.com", e.Value())
		assert.Equal(t, e.Value(), e.String())

		again, err := NewEmail(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, again)
	})

	t.Run("invalid input always fails", func(t *testing.T) {
		for _, in := range []string{"", "   ", "plainstring", "@nouser.com", "user@", "user@host", "user@@example.com"} {
			_, err := NewEmail(in)
			assert.ErrorIs(t, err, ErrValidation, "input %q", in)
		}
	})
}

func TestNewProductSku(t *testing.T) {
	t.Run("normalizes to uppercase and round-trips", func(t *testing.T) {
		sku, err := NewProductSku(" kb-tkl-001 ")
		require.NoError(t, err)
		assert.Equal(t, "KB-TKL-001", sku.Value())

		again, err := NewProductSku(sku.String())
		require.NoError(t, err)
		assert.Equal(t, sku, again)
	})

	t.Run("invalid input always fails", func(t *testing.T) {
		for _, in := range []string{"", "AB", "ABC", "-ABCD", "ABCD-", "AB CD", "A123456789012345678901", "SKU_01"} {
			_, err := NewProductSku(in)
			assert.ErrorIs(t, err, ErrValidation, "input %q", in)
		}
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("requires all four components", func(t *testing.T) {
		cases := []struct {
			name                              string
			street, city, country, postalCode string
		}{
			{"street", "", "Singapore", "SG", "238801"},
			{"city", "1 Orchard Road", "", "SG", "238801"},
			{"country", "1 Orchard Road", "Singapore", "", "238801"},
			{"postal code", "1 Orchard Road", "Singapore", "SG", "  "},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewAddress(tc.street, tc.city, tc.country, tc.postalCode)
				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("value equality", func(t *testing.T) {
		a, err := NewAddress("1 Orchard Road", "Singapore", "SG", "238801")
		require.NoError(t, err)
		b, err := NewAddress("1 Orchard Road", "Singapore", "SG", "238801")
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, "1 Orchard Road, Singapore, SG, 238801", a.String())
	})
}
