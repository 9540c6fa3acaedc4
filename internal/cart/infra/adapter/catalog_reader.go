// Package adapter bridges the cart context to its neighbours through
// their application services.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
)

// CatalogReader adapts the catalog service to the cart's ProductReader
// port.
type CatalogReader struct {
	catalog *catalogapp.Service
}

func NewCatalogReader(catalog *catalogapp.Service) *CatalogReader {
	return &CatalogReader{catalog: catalog}
}

func (a *CatalogReader) GetProduct(ctx context.Context, productID uuid.UUID) (app.ProductSnapshot, error) {
	product, err := a.catalog.GetProduct(ctx, productID)
	if err != nil {
		return app.ProductSnapshot{}, err
	}
	return app.ProductSnapshot{
		ID:        product.ID(),
		Name:      product.Name(),
		Price:     product.Price(),
		Available: !product.IsDeleted(),
	}, nil
}
