package domain

import (
	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// StockReserved records that stock was set aside for an order line.
type StockReserved struct {
	shared.EventMeta

	ProductID uuid.UUID
	Quantity  int
}

func NewStockReserved(productID uuid.UUID, quantity int) StockReserved {
	return StockReserved{
		EventMeta: shared.NewEventMeta(),
		ProductID: productID,
		Quantity:  quantity,
	}
}
