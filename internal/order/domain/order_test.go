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

func testAddress(t *testing.T) shared.Address {
	t.Helper()
	addr, err := shared.NewAddress("1 Orchard Road", "Singapore", "SG", "238801")
	require.NoError(t, err)
	return addr
}

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	number, err := shared.OrderNumberFrom("ORD-20240101-1234")
	require.NoError(t, err)
	order, err := NewOrder(uuid.New(), testAddress(t), number)
	require.NoError(t, err)
	return order
}

// orderIn drives an order to the requested status.
func orderIn(t *testing.T, status Status) *Order {
	t.Helper()
	order := newTestOrder(t)
	if status == StatusPending {
		return order
	}
	require.NoError(t, order.AddItem(uuid.New(), "Widget", usd(t, 10), 1))
	require.NoError(t, order.Place())
	switch status {
	case StatusProcessing:
	case StatusShipped:
		require.NoError(t, order.MarkShipped())
	case StatusDelivered:
		require.NoError(t, order.MarkShipped())
		require.NoError(t, order.MarkDelivered())
	case StatusCancelled:
		require.NoError(t, order.Cancel())
	}
	require.Equal(t, status, order.Status())
	return order
}

func TestNewOrder(t *testing.T) {
	order := newTestOrder(t)
	assert.Equal(t, StatusPending, order.Status())
	assert.Equal(t, "0.00 USD", order.Total().String())
	assert.Empty(t, order.Items())

	_, err := NewOrder(uuid.Nil, testAddress(t), order.Number())
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestOrderAddItem(t *testing.T) {
	t.Run("total equals the sum of line totals", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.AddItem(uuid.New(), "Widget", usd(t, 15.01), 1))
		require.NoError(t, order.AddItem(uuid.New(), "Gadget", usd(t, 4.99), 2))
		assert.Equal(t, "24.99 USD", order.Total().String())
	})

	t.Run("duplicate product fails", func(t *testing.T) {
		order := newTestOrder(t)
		productID := uuid.New()
		require.NoError(t, order.AddItem(productID, "Widget", usd(t, 10), 1))
		err := order.AddItem(productID, "Widget", usd(t, 10), 2)
		assert.ErrorIs(t, err, shared.ErrDuplicateItem)
		assert.Equal(t, "10.00 USD", order.Total().String())
	})

	t.Run("mixed currencies are rejected", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.AddItem(uuid.New(), "Widget", usd(t, 10), 1))
		eur, err := shared.MoneyFromFloat(5, shared.EUR)
		require.NoError(t, err)
		assert.ErrorIs(t, order.AddItem(uuid.New(), "Gadget", eur, 1), shared.ErrCurrencyMismatch)
	})

	t.Run("only pending orders accept items", func(t *testing.T) {
		order := orderIn(t, StatusProcessing)
		err := order.AddItem(uuid.New(), "Late", usd(t, 1), 1)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("non-positive quantity fails", func(t *testing.T) {
		order := newTestOrder(t)
		assert.ErrorIs(t, order.AddItem(uuid.New(), "Widget", usd(t, 1), 0), shared.ErrValidation)
	})

	t.Run("unit price rounding happens at Money construction", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.AddItem(uuid.New(), "Widget", usd(t, 15.005), 1))
		assert.Equal(t, "15.01 USD", order.Total().String())
	})
}

func TestOrderPlace(t *testing.T) {
	t.Run("empty order cannot be placed", func(t *testing.T) {
		order := newTestOrder(t)
		assert.ErrorIs(t, order.Place(), shared.ErrInvalidState)
		assert.Equal(t, StatusPending, order.Status())
	})

	t.Run("raises exactly one OrderPlaced", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.AddItem(uuid.New(), "Widget", usd(t, 10), 1))
		require.NoError(t, order.Place())

		assert.Equal(t, StatusProcessing, order.Status())
		evs := order.Events()
		require.Len(t, evs, 1)
		placed, ok := evs[0].(OrderPlaced)
		require.True(t, ok)
		assert.Equal(t, order.ID(), placed.OrderID)
		assert.Equal(t, order.CustomerID(), placed.CustomerID)
		assert.Equal(t, order.Number().Value(), placed.OrderNumber)
	})

	t.Run("cannot be placed twice", func(t *testing.T) {
		order := orderIn(t, StatusProcessing)
		assert.ErrorIs(t, order.Place(), shared.ErrInvalidState)
	})
}

func TestOrderTransitionMatrix(t *testing.T) {
	cases := []struct {
		from    Status
		op      func(*Order) error
		opName  string
		allowed bool
	}{
		{StatusPending, (*Order).Cancel, "cancel", true},
		{StatusProcessing, (*Order).Cancel, "cancel", true},
		{StatusShipped, (*Order).Cancel, "cancel", false},
		{StatusDelivered, (*Order).Cancel, "cancel", false},
		{StatusCancelled, (*Order).Cancel, "cancel", false},

		{StatusPending, (*Order).MarkShipped, "ship", false},
		{StatusProcessing, (*Order).MarkShipped, "ship", true},
		{StatusShipped, (*Order).MarkShipped, "ship", false},
		{StatusDelivered, (*Order).MarkShipped, "ship", false},
		{StatusCancelled, (*Order).MarkShipped, "ship", false},

		{StatusPending, (*Order).MarkDelivered, "deliver", false},
		{StatusProcessing, (*Order).MarkDelivered, "deliver", false},
		{StatusShipped, (*Order).MarkDelivered, "deliver", true},
		{StatusDelivered, (*Order).MarkDelivered, "deliver", false},
		{StatusCancelled, (*Order).MarkDelivered, "deliver", false},
	}

	for _, tc := range cases {
		t.Run(tc.opName+" from "+tc.from.String(), func(t *testing.T) {
			order := orderIn(t, tc.from)
			err := tc.op(order)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, shared.ErrInvalidState)
				assert.Equal(t, tc.from, order.Status(), "failed transition must not change state")
			}
		})
	}
}

func TestOrderItemSnapshots(t *testing.T) {
	order := newTestOrder(t)
	productID := uuid.New()
	require.NoError(t, order.AddItem(productID, "Widget", usd(t, 2.50), 4))

	item := order.Items()[0]
	assert.Equal(t, order.ID(), item.OrderID())
	assert.Equal(t, productID, item.ProductID())
	assert.Equal(t, "Widget", item.ProductName())
	assert.Equal(t, "10.00 USD", item.LineTotal().String())
}

func TestOrderBelongsTo(t *testing.T) {
	order := newTestOrder(t)
	assert.True(t, order.BelongsTo(order.CustomerID()))
	assert.False(t, order.BelongsTo(uuid.New()))
}
