package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

type CartRepo struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*domain.ShoppingCart
	byCustomer map[uuid.UUID]uuid.UUID
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		byID:       make(map[uuid.UUID]*domain.ShoppingCart),
		byCustomer: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *CartRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingCart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: cart %s", shared.ErrNotFound, id)
	}
	return cart, nil
}

func (r *CartRepo) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.ShoppingCart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cartID, ok := r.byCustomer[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: cart for customer %s", shared.ErrNotFound, customerID)
	}
	return r.byID[cartID], nil
}

// Add stores a new cart. One active cart per customer; a second Add
// for the same customer fails.
func (r *CartRepo) Add(ctx context.Context, cart *domain.ShoppingCart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCustomer[cart.CustomerID()]; ok {
		return fmt.Errorf("%w: cart for customer %s", shared.ErrAlreadyExists, cart.CustomerID())
	}
	r.byID[cart.ID()] = cart
	r.byCustomer[cart.CustomerID()] = cart.ID()
	return nil
}

func (r *CartRepo) Update(ctx context.Context, cart *domain.ShoppingCart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[cart.ID()]; !ok {
		return fmt.Errorf("%w: cart %s", shared.ErrNotFound, cart.ID())
	}
	r.byID[cart.ID()] = cart
	return nil
}
