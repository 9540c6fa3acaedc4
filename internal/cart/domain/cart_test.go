package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/shared"
)

func usd(t *testing.T, amount float64) shared.Money {
	t.Helper()
	m, err := shared.MoneyFromFloat(amount, shared.USD)
	require.NoError(t, err)
	return m
}

func TestShoppingCartLifecycle(t *testing.T) {
	customerID := uuid.New()
	productA := uuid.New()

	cart, err := NewShoppingCart(customerID)
	require.NoError(t, err)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "0.00 USD", cart.Total().String())
	assert.True(t, cart.BelongsTo(customerID))
	assert.False(t, cart.BelongsTo(uuid.New()))

	require.NoError(t, cart.AddItem(productA, "Widget", usd(t, 10), 2))
	assert.Equal(t, "20.00 USD", cart.Total().String())

	// same product merges into the existing line
	require.NoError(t, cart.AddItem(productA, "Widget", usd(t, 10), 1))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 3, cart.Items()[0].Quantity())
	assert.Equal(t, "30.00 USD", cart.Total().String())

	// zero quantity removes the line
	require.NoError(t, cart.UpdateItemQuantity(productA, 0))
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "0.00 USD", cart.Total().String())
}

func TestShoppingCartAddItem(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		cart, err := NewShoppingCart(uuid.New())
		require.NoError(t, err)
		assert.ErrorIs(t, cart.AddItem(uuid.New(), "Widget", usd(t, 1), 0), shared.ErrValidation)
	})

	t.Run("rejects a second currency", func(t *testing.T) {
		cart, err := NewShoppingCart(uuid.New())
		require.NoError(t, err)
		require.NoError(t, cart.AddItem(uuid.New(), "Widget", usd(t, 1), 1))

		eur, err := shared.MoneyFromFloat(1, shared.EUR)
		require.NoError(t, err)
		assert.ErrorIs(t, cart.AddItem(uuid.New(), "Gadget", eur, 1), shared.ErrCurrencyMismatch)
		require.Len(t, cart.Items(), 1)
	})

	t.Run("requires a customer", func(t *testing.T) {
		_, err := NewShoppingCart(uuid.Nil)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestShoppingCartItemOperations(t *testing.T) {
	customerID := uuid.New()
	productA, productB := uuid.New(), uuid.New()

	cart, err := NewShoppingCart(customerID)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(productA, "Widget", usd(t, 10), 1))
	require.NoError(t, cart.AddItem(productB, "Gadget", usd(t, 4.50), 2))

	t.Run("update quantity of present line", func(t *testing.T) {
		require.NoError(t, cart.UpdateItemQuantity(productB, 4))
		assert.Equal(t, "28.00 USD", cart.Total().String())
	})

	t.Run("update of absent product fails", func(t *testing.T) {
		assert.ErrorIs(t, cart.UpdateItemQuantity(uuid.New(), 3), shared.ErrNotFound)
	})

	t.Run("remove absent product fails", func(t *testing.T) {
		assert.ErrorIs(t, cart.RemoveItem(uuid.New()), shared.ErrNotFound)
	})

	t.Run("remove present line", func(t *testing.T) {
		require.NoError(t, cart.RemoveItem(productB))
		require.Len(t, cart.Items(), 1)
		assert.Equal(t, "10.00 USD", cart.Total().String())
	})

	t.Run("clear empties everything", func(t *testing.T) {
		cart.Clear()
		assert.True(t, cart.IsEmpty())
	})
}

func TestCartItemSnapshots(t *testing.T) {
	cart, err := NewShoppingCart(uuid.New())
	require.NoError(t, err)
	productID := uuid.New()
	require.NoError(t, cart.AddItem(productID, "Widget", usd(t, 3.33), 3))

	item := cart.Items()[0]
	assert.Equal(t, cart.ID(), item.CartID())
	assert.Equal(t, "Widget", item.ProductName())
	assert.Equal(t, "9.99 USD", item.LineTotal().String())
}
