package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/customer/domain"
)

// CustomerRepo is the persistence port for the Customer aggregate.
type CustomerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Add(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
}
