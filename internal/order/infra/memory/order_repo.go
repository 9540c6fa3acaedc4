package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

type OrderRepo struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*domain.Order
	byNumber map[string]uuid.UUID
	sequence []uuid.UUID
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		byID:     make(map[uuid.UUID]*domain.Order),
		byNumber: make(map[string]uuid.UUID),
	}
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", shared.ErrNotFound, id)
	}
	return order, nil
}

func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", shared.ErrNotFound, number)
	}
	return r.byID[id], nil
}

func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Order
	for _, id := range r.sequence {
		if order := r.byID[id]; order.CustomerID() == customerID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Order, 0, len(r.sequence))
	for _, id := range r.sequence {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *OrderRepo) Add(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[order.ID()]; ok {
		return fmt.Errorf("%w: order %s", shared.ErrAlreadyExists, order.ID())
	}
	r.byID[order.ID()] = order
	r.byNumber[order.Number().Value()] = order.ID()
	r.sequence = append(r.sequence, order.ID())
	return nil
}

func (r *OrderRepo) Update(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[order.ID()]; !ok {
		return fmt.Errorf("%w: order %s", shared.ErrNotFound, order.ID())
	}
	r.byID[order.ID()] = order
	return nil
}
