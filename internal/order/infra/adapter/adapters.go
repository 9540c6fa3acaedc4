// Package adapter bridges the order context to cart and catalog
// through their application services (no aggregate ever crosses a
// context boundary directly).
package adapter

import (
	"context"

	"github.com/google/uuid"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/order/app"
)

// StockAdapter adapts the catalog service to the order flow's
// StockReservations port.
type StockAdapter struct {
	catalog *catalogapp.Service
}

func NewStockAdapter(catalog *catalogapp.Service) *StockAdapter {
	return &StockAdapter{catalog: catalog}
}

func (a *StockAdapter) Reserve(ctx context.Context, productID uuid.UUID, quantity int) error {
	return a.catalog.ReserveStock(ctx, productID, quantity)
}

func (a *StockAdapter) Restore(ctx context.Context, productID uuid.UUID, quantity int) error {
	return a.catalog.RestoreStock(ctx, productID, quantity)
}

// CartAdapter adapts the cart service to the order flow's CartReader
// port.
type CartAdapter struct {
	cart *cartapp.Service
}

func NewCartAdapter(cart *cartapp.Service) *CartAdapter {
	return &CartAdapter{cart: cart}
}

func (a *CartAdapter) Lines(ctx context.Context, customerID uuid.UUID) ([]app.CartLine, error) {
	cart, err := a.cart.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items := cart.Items()
	lines := make([]app.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, app.CartLine{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
		})
	}
	return lines, nil
}

func (a *CartAdapter) Clear(ctx context.Context, customerID uuid.UUID) error {
	return a.cart.ClearCart(ctx, customerID)
}
