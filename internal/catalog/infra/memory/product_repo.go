// Package memory provides map-backed repository adapters. Access is
// serialized with an RWMutex, standing in for the per-aggregate
// locking a real store would provide.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

type ProductRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*domain.Product
	order []uuid.UUID
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{byID: make(map[uuid.UUID]*domain.Product)}
}

func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: product %s", shared.ErrNotFound, id)
	}
	return p, nil
}

func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if p := r.byID[id]; p.SKU().Value() == sku {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: product with SKU %s", shared.ErrNotFound, sku)
}

func (r *ProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *ProductRepo) Add(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID()]; ok {
		return fmt.Errorf("%w: product %s", shared.ErrAlreadyExists, product.ID())
	}
	r.byID[product.ID()] = product
	r.order = append(r.order, product.ID())
	return nil
}

func (r *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID()]; !ok {
		return fmt.Errorf("%w: product %s", shared.ErrNotFound, product.ID())
	}
	r.byID[product.ID()] = product
	return nil
}
