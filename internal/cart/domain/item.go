package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// CartItem is a cart line. Product name and unit price are snapshots
// taken when the line was added; later catalog changes do not reach
// into existing carts.
type CartItem struct {
	shared.Entity

	cartID      uuid.UUID
	productID   uuid.UUID
	productName string
	unitPrice   shared.Money
	quantity    int
}

func newCartItem(cartID, productID uuid.UUID, productName string, unitPrice shared.Money, quantity int) *CartItem {
	return &CartItem{
		Entity:      shared.NewEntity(),
		cartID:      cartID,
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}
}

func (i *CartItem) CartID() uuid.UUID       { return i.cartID }
func (i *CartItem) ProductID() uuid.UUID    { return i.productID }
func (i *CartItem) ProductName() string     { return i.productName }
func (i *CartItem) UnitPrice() shared.Money { return i.unitPrice }
func (i *CartItem) Quantity() int           { return i.quantity }

// LineTotal is unit price times quantity.
func (i *CartItem) LineTotal() shared.Money {
	// quantity is kept positive by the cart
	total, _ := i.unitPrice.Multiply(i.quantity)
	return total
}

func (i *CartItem) setQuantity(newQuantity int) error {
	if newQuantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", shared.ErrValidation, newQuantity)
	}
	i.quantity = newQuantity
	return nil
}
