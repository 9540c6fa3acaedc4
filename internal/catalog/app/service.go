package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

// Service orchestrates the Product aggregate: load, invoke, persist,
// dispatch.
type Service struct {
	repo       ProductRepo
	dispatcher Dispatcher
	log        *slog.Logger
}

func NewService(repo ProductRepo, dispatcher Dispatcher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, dispatcher: dispatcher, log: log}
}

type CreateProductInput struct {
	Name         string
	Description  string
	Price        shared.Money
	Category     string
	InitialStock int
	SKU          string
}

// CreateProduct registers a new catalog entry with a unique SKU.
func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	sku, err := shared.NewProductSku(in.SKU)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetBySKU(ctx, sku.Value()); err == nil {
		return nil, fmt.Errorf("%w: SKU %s", shared.ErrAlreadyExists, sku)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	product, err := domain.NewProduct(in.Name, in.Description, in.Price, in.Category, in.InitialStock, sku)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Add(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("product created",
		slog.String("product_id", product.ID().String()),
		slog.String("sku", sku.Value()),
	)
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	normalized, err := shared.NewProductSku(sku)
	if err != nil {
		return nil, err
	}
	return s.repo.GetBySKU(ctx, normalized.Value())
}

// ListProducts returns the visible (non-deleted) catalog.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]*domain.Product, 0, len(all))
	for _, p := range all {
		if !p.IsDeleted() {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (s *Service) UpdateDetails(ctx context.Context, id uuid.UUID, name, description, category string) error {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		return p.UpdateDetails(name, description, category)
	})
}

func (s *Service) UpdatePrice(ctx context.Context, id uuid.UUID, newPrice shared.Money) error {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		p.UpdatePrice(newPrice)
		return nil
	})
}

func (s *Service) AddStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		return p.AddStock(quantity)
	})
}

// ReserveStock is invoked by the order placement flow; it persists the
// decrement and dispatches the StockReserved event.
func (s *Service) ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		return p.ReserveStock(quantity)
	})
}

// RestoreStock reverses a reservation after an order cancellation.
func (s *Service) RestoreStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		return p.RestoreStock(quantity)
	})
}

func (s *Service) AddVariant(ctx context.Context, id uuid.UUID, sku, attributes string, stock int, priceModifier shared.Money) error {
	variantSku, err := shared.NewProductSku(sku)
	if err != nil {
		return err
	}
	return s.mutate(ctx, id, func(p *domain.Product) error {
		_, err := p.AddVariant(variantSku, attributes, stock, priceModifier)
		return err
	})
}

// DeleteProduct soft-deletes; history stays intact.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		p.SoftDelete()
		return nil
	})
}

func (s *Service) RestoreProduct(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, id, func(p *domain.Product) error {
		p.Restore()
		return nil
	})
}

// mutate runs the load-invoke-persist-dispatch cycle shared by every
// product mutation.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, op func(*domain.Product) error) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := op(product); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	if evs := product.Events(); len(evs) > 0 {
		s.dispatcher.Dispatch(ctx, evs...)
		product.ClearEvents()
	}
	return nil
}
