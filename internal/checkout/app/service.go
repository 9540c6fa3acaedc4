package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

// CartReader exposes the customer's cart lines to quoting.
type CartReader interface {
	Lines(ctx context.Context, customerID uuid.UUID) ([]CartLine, error)
}

type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// CatalogReader resolves current product state for repricing.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (Product, error)
}

type Product struct {
	ID        uuid.UUID
	Name      string
	Price     shared.Money
	Available bool
}

// Service reprices carts against the live catalog with bounded
// concurrency.
type Service struct {
	cart    CartReader
	catalog CatalogReader

	maxConcurrent int
	log           *slog.Logger
}

func NewService(cart CartReader, catalog CatalogReader, maxConcurrent int, log *slog.Logger) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{cart: cart, catalog: catalog, maxConcurrent: maxConcurrent, log: log}
}

// Quote reprices every cart line at current catalog prices. Product
// lookups run concurrently, bounded by maxConcurrent.
func (s *Service) Quote(ctx context.Context, customerID uuid.UUID) (domain.Quote, error) {
	items, err := s.cart.Lines(ctx, customerID)
	if err != nil {
		return domain.Quote{}, err
	}
	if len(items) == 0 {
		return domain.Quote{}, fmt.Errorf("%w: cart is empty", shared.ErrInvalidState)
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]

			product, err := s.catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}
			if !product.Available {
				return fmt.Errorf("%w: product %s is not available", shared.ErrInvalidState, it.ProductID)
			}

			lineTotal, err := product.Price.Multiply(it.Quantity)
			if err != nil {
				return err
			}
			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: lineTotal,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	total := shared.Zero(lines[0].UnitPrice.Currency())
	for _, line := range lines {
		total, err = total.Add(line.LineTotal)
		if err != nil {
			return domain.Quote{}, err
		}
	}

	return domain.Quote{Lines: lines, Total: total}, nil
}
