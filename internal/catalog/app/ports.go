package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

// ProductRepo is the persistence port for the Product aggregate. The
// implementation guarantees exclusive read-modify-write per aggregate
// id; absent products surface shared.ErrNotFound.
type ProductRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Add(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
}

// Dispatcher delivers buffered domain events after a persist.
type Dispatcher interface {
	Dispatch(ctx context.Context, evs ...shared.Event)
}
