package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/customer/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

type CustomerRepo struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*domain.Customer
	byEmail map[string]uuid.UUID
	order   []uuid.UUID
}

func NewCustomerRepo() *CustomerRepo {
	return &CustomerRepo{
		byID:    make(map[uuid.UUID]*domain.Customer),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *CustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", shared.ErrNotFound, id)
	}
	return customer, nil
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("%w: customer with email %s", shared.ErrNotFound, email)
	}
	return r.byID[id], nil
}

func (r *CustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *CustomerRepo) Add(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[customer.Email().Value()]; ok {
		return fmt.Errorf("%w: email %s", shared.ErrAlreadyExists, customer.Email())
	}
	r.byID[customer.ID()] = customer
	r.byEmail[customer.Email().Value()] = customer.ID()
	r.order = append(r.order, customer.ID())
	return nil
}

func (r *CustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[customer.ID()]; !ok {
		return fmt.Errorf("%w: customer %s", shared.ErrNotFound, customer.ID())
	}
	r.byID[customer.ID()] = customer
	return nil
}
