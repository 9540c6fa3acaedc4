// Package adapter wires checkout to the cart and catalog services.
package adapter

import (
	"context"

	"github.com/google/uuid"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/checkout/app"
)

// CartServiceReader adapts the cart service to checkout's CartReader
// port.
type CartServiceReader struct {
	cart *cartapp.Service
}

func NewCartServiceReader(cart *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{cart: cart}
}

func (a *CartServiceReader) Lines(ctx context.Context, customerID uuid.UUID) ([]app.CartLine, error) {
	cart, err := a.cart.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items := cart.Items()
	lines := make([]app.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, app.CartLine{ProductID: item.ProductID(), Quantity: item.Quantity()})
	}
	return lines, nil
}

// CatalogServiceReader adapts the catalog service to checkout's
// CatalogReader port.
type CatalogServiceReader struct {
	catalog *catalogapp.Service
}

func NewCatalogServiceReader(catalog *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{catalog: catalog}
}

func (a *CatalogServiceReader) GetProduct(ctx context.Context, productID uuid.UUID) (app.Product, error) {
	product, err := a.catalog.GetProduct(ctx, productID)
	if err != nil {
		return app.Product{}, err
	}
	return app.Product{
		ID:        product.ID(),
		Name:      product.Name(),
		Price:     product.Price(),
		Available: !product.IsDeleted(),
	}, nil
}
