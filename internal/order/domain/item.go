package domain

import (
	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// OrderItem is an order line. Name and unit price are snapshots frozen
// at add time so later catalog changes never alter historical totals.
type OrderItem struct {
	shared.Entity

	orderID     uuid.UUID
	productID   uuid.UUID
	productName string
	unitPrice   shared.Money
	quantity    int
}

func newOrderItem(orderID, productID uuid.UUID, productName string, unitPrice shared.Money, quantity int) *OrderItem {
	return &OrderItem{
		Entity:      shared.NewEntity(),
		orderID:     orderID,
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}
}

func (i *OrderItem) OrderID() uuid.UUID      { return i.orderID }
func (i *OrderItem) ProductID() uuid.UUID    { return i.productID }
func (i *OrderItem) ProductName() string     { return i.productName }
func (i *OrderItem) UnitPrice() shared.Money { return i.unitPrice }
func (i *OrderItem) Quantity() int           { return i.quantity }

// LineTotal is unit price times quantity.
func (i *OrderItem) LineTotal() shared.Money {
	total, _ := i.unitPrice.Multiply(i.quantity)
	return total
}
