package domain

import (
	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// OrderPlaced records that an order moved from Pending to Processing.
type OrderPlaced struct {
	shared.EventMeta

	OrderID     uuid.UUID
	CustomerID  uuid.UUID
	OrderNumber string
}

func NewOrderPlaced(orderID, customerID uuid.UUID, orderNumber string) OrderPlaced {
	return OrderPlaced{
		EventMeta:   shared.NewEventMeta(),
		OrderID:     orderID,
		CustomerID:  customerID,
		OrderNumber: orderNumber,
	}
}
