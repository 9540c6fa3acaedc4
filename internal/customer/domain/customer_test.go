package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/shared"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		c, err := NewCustomer(" Alice ", "Tan", "Alice.Tan@Example.com", "hash-1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", c.FirstName())
		assert.Equal(t, "Alice Tan", c.FullName())
		assert.Equal(t, "alice.tan@example.com", c.Email().Value())
		assert.False(t, c.IsAdmin())
		assert.Nil(t, c.ShippingAddress())
	})

	t.Run("blank names fail", func(t *testing.T) {
		_, err := NewCustomer("  ", "Tan", "a@b.co", "h")
		assert.ErrorIs(t, err, shared.ErrValidation)
		_, err = NewCustomer("Alice", "", "a@b.co", "h")
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("invalid email fails", func(t *testing.T) {
		_, err := NewCustomer("Alice", "Tan", "not-an-email", "h")
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestCustomerUpdateProfile(t *testing.T) {
	c, err := NewCustomer("Alice", "Tan", "alice@example.com", "h")
	require.NoError(t, err)

	addr, err := shared.NewAddress("1 Orchard Road", "Singapore", "SG", "238801")
	require.NoError(t, err)

	require.NoError(t, c.UpdateProfile("Alicia", "Teo", &addr))
	assert.Equal(t, "Alicia Teo", c.FullName())
	require.NotNil(t, c.ShippingAddress())
	assert.Equal(t, addr, *c.ShippingAddress())

	t.Run("blank name rejected, state unchanged", func(t *testing.T) {
		assert.ErrorIs(t, c.UpdateProfile("", "Teo", nil), shared.ErrValidation)
		assert.Equal(t, "Alicia", c.FirstName())
	})

	t.Run("address can be cleared", func(t *testing.T) {
		require.NoError(t, c.UpdateProfile("Alicia", "Teo", nil))
		assert.Nil(t, c.ShippingAddress())
	})
}

func TestCustomerPasswordAndAdmin(t *testing.T) {
	c, err := NewCustomer("Alice", "Tan", "alice@example.com", "old-hash")
	require.NoError(t, err)

	c.ChangePassword("new-hash")
	assert.Equal(t, "new-hash", c.PasswordHash())

	c.PromoteToAdmin()
	assert.True(t, c.IsAdmin())
}
