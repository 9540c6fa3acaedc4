package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

// OrderRepo is the persistence port for the Order aggregate.
type OrderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Add(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
}

// StockReservations is the slice of the catalog context the order flow
// needs: reserving stock at placement and restoring it on
// cancellation.
type StockReservations interface {
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) error
	Restore(ctx context.Context, productID uuid.UUID, quantity int) error
}

// CartLine is one cart line as seen by order placement.
type CartLine struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   shared.Money
	Quantity    int
}

// CartReader exposes the customer's cart to order placement.
type CartReader interface {
	Lines(ctx context.Context, customerID uuid.UUID) ([]CartLine, error)
	Clear(ctx context.Context, customerID uuid.UUID) error
}

// Dispatcher delivers buffered domain events after a persist.
type Dispatcher interface {
	Dispatch(ctx context.Context, evs ...shared.Event)
}
