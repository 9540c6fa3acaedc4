package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// ShoppingCart is the pre-order basket aggregate. Each product appears
// on at most one line; adding an already-present product merges into
// its quantity. All lines share a single currency.
type ShoppingCart struct {
	shared.AggregateRoot

	customerID uuid.UUID
	items      []*CartItem
	createdAt  time.Time
	updatedAt  time.Time
}

// NewShoppingCart creates an empty cart owned by the given customer.
func NewShoppingCart(customerID uuid.UUID) (*ShoppingCart, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer id is required", shared.ErrValidation)
	}
	now := time.Now().UTC()
	return &ShoppingCart{
		AggregateRoot: shared.NewAggregateRoot(),
		customerID:    customerID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (c *ShoppingCart) CustomerID() uuid.UUID { return c.customerID }
func (c *ShoppingCart) CreatedAt() time.Time  { return c.createdAt }
func (c *ShoppingCart) UpdatedAt() time.Time  { return c.updatedAt }
func (c *ShoppingCart) IsEmpty() bool         { return len(c.items) == 0 }

// Items returns the cart lines in insertion order.
func (c *ShoppingCart) Items() []*CartItem {
	out := make([]*CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums the line totals. An empty cart totals zero USD.
func (c *ShoppingCart) Total() shared.Money {
	if len(c.items) == 0 {
		return shared.Zero(shared.USD)
	}
	total := shared.Zero(c.items[0].UnitPrice().Currency())
	for _, item := range c.items {
		// single-currency invariant is enforced in AddItem
		total, _ = total.Add(item.LineTotal())
	}
	return total
}

// AddItem appends a new line or, when the product is already present,
// increases that line's quantity. The unit price currency must match
// the rest of the cart.
func (c *ShoppingCart) AddItem(productID uuid.UUID, productName string, unitPrice shared.Money, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", shared.ErrValidation, quantity)
	}
	if len(c.items) > 0 && c.items[0].UnitPrice().Currency() != unitPrice.Currency() {
		return fmt.Errorf("%w: cart is priced in %s, item is %s",
			shared.ErrCurrencyMismatch, c.items[0].UnitPrice().Currency(), unitPrice.Currency())
	}

	if existing := c.find(productID); existing != nil {
		if err := existing.setQuantity(existing.Quantity() + quantity); err != nil {
			return err
		}
	} else {
		c.items = append(c.items, newCartItem(c.ID(), productID, productName, unitPrice, quantity))
	}
	c.touch()
	return nil
}

// UpdateItemQuantity sets a line's quantity. A quantity of zero or
// less removes the line; an absent product fails with ErrNotFound.
func (c *ShoppingCart) UpdateItemQuantity(productID uuid.UUID, newQuantity int) error {
	item := c.find(productID)
	if item == nil {
		return fmt.Errorf("%w: product %s is not in the cart", shared.ErrNotFound, productID)
	}
	if newQuantity <= 0 {
		c.remove(productID)
	} else if err := item.setQuantity(newQuantity); err != nil {
		return err
	}
	c.touch()
	return nil
}

// RemoveItem deletes a line, failing with ErrNotFound when absent.
func (c *ShoppingCart) RemoveItem(productID uuid.UUID) error {
	if c.find(productID) == nil {
		return fmt.Errorf("%w: product %s is not in the cart", shared.ErrNotFound, productID)
	}
	c.remove(productID)
	c.touch()
	return nil
}

// Clear empties the cart.
func (c *ShoppingCart) Clear() {
	c.items = nil
	c.touch()
}

// BelongsTo is the ownership check used by the authorization layer.
func (c *ShoppingCart) BelongsTo(customerID uuid.UUID) bool {
	return c.customerID == customerID
}

func (c *ShoppingCart) find(productID uuid.UUID) *CartItem {
	for _, item := range c.items {
		if item.ProductID() == productID {
			return item
		}
	}
	return nil
}

func (c *ShoppingCart) remove(productID uuid.UUID) {
	for i, item := range c.items {
		if item.ProductID() == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *ShoppingCart) touch() {
	c.updatedAt = time.Now().UTC()
}
