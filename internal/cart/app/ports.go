package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

// CartRepo is the persistence port for the ShoppingCart aggregate.
type CartRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingCart, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.ShoppingCart, error)
	Add(ctx context.Context, cart *domain.ShoppingCart) error
	Update(ctx context.Context, cart *domain.ShoppingCart) error
}

// ProductSnapshot is the slice of catalog state a cart line freezes at
// add time.
type ProductSnapshot struct {
	ID        uuid.UUID
	Name      string
	Price     shared.Money
	Available bool
}

// ProductReader resolves snapshots from the owning catalog context.
type ProductReader interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (ProductSnapshot, error)
}
