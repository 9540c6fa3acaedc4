package app_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	"github.com/dwikikusuma/storefront/internal/shared"
)

type recordingDispatcher struct {
	mu     sync.Mutex
	events []shared.Event
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, evs ...shared.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, evs...)
}

func (d *recordingDispatcher) all() []shared.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]shared.Event, len(d.events))
	copy(out, d.events)
	return out
}

func newTestService(t *testing.T) (*app.Service, *recordingDispatcher) {
	t.Helper()
	dispatcher := &recordingDispatcher{}
	return app.NewService(memory.NewProductRepo(), dispatcher, nil), dispatcher
}

func createProduct(t *testing.T, svc *app.Service, sku string, stock int) *domain.Product {
	t.Helper()
	price, err := shared.MoneyFromFloat(19.99, shared.USD)
	require.NoError(t, err)
	product, err := svc.CreateProduct(context.Background(), app.CreateProductInput{
		Name:         "Widget",
		Description:  "test widget",
		Price:        price,
		Category:     "misc",
		InitialStock: stock,
		SKU:          sku,
	})
	require.NoError(t, err)
	return product
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	t.Run("invalid SKU fails", func(t *testing.T) {
		price, err := shared.MoneyFromFloat(1, shared.USD)
		require.NoError(t, err)
		_, err = svc.CreateProduct(ctx, app.CreateProductInput{Name: "Widget", Price: price, Category: "misc", SKU: "!!"})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("duplicate SKU fails", func(t *testing.T) {
		createProduct(t, svc, "WID-0001", 5)
		price, err := shared.MoneyFromFloat(1, shared.USD)
		require.NoError(t, err)
		_, err = svc.CreateProduct(ctx, app.CreateProductInput{Name: "Other", Price: price, Category: "misc", SKU: "wid-0001"})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("lookup by SKU is normalized", func(t *testing.T) {
		got, err := svc.GetBySKU(ctx, " wid-0001 ")
		require.NoError(t, err)
		assert.Equal(t, "WID-0001", got.SKU().Value())
	})
}

func TestReserveStockDispatchesEvent(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher := newTestService(t)
	product := createProduct(t, svc, "WID-0002", 10)

	require.NoError(t, svc.ReserveStock(ctx, product.ID(), 4))

	got, err := svc.GetProduct(ctx, product.ID())
	require.NoError(t, err)
	assert.Equal(t, 6, got.StockQuantity())
	// buffer was flushed into the dispatcher
	assert.Empty(t, got.Events())

	evs := dispatcher.all()
	require.Len(t, evs, 1)
	reserved, ok := evs[0].(domain.StockReserved)
	require.True(t, ok)
	assert.Equal(t, product.ID(), reserved.ProductID)
	assert.Equal(t, 4, reserved.Quantity)
}

func TestReserveStockInsufficient(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher := newTestService(t)
	product := createProduct(t, svc, "WID-0003", 2)

	err := svc.ReserveStock(ctx, product.ID(), 5)
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)

	got, err := svc.GetProduct(ctx, product.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, got.StockQuantity())
	assert.Empty(t, dispatcher.all())
}

func TestSoftDeleteHidesFromListing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	kept := createProduct(t, svc, "WID-0004", 1)
	dropped := createProduct(t, svc, "WID-0005", 1)

	require.NoError(t, svc.DeleteProduct(ctx, dropped.ID()))

	visible, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, kept.ID(), visible[0].ID())

	require.NoError(t, svc.RestoreProduct(ctx, dropped.ID()))
	visible, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestUpdatePriceAndStock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	product := createProduct(t, svc, "WID-0006", 3)

	newPrice, err := shared.MoneyFromFloat(24.50, shared.USD)
	require.NoError(t, err)
	require.NoError(t, svc.UpdatePrice(ctx, product.ID(), newPrice))
	require.NoError(t, svc.AddStock(ctx, product.ID(), 7))

	got, err := svc.GetProduct(ctx, product.ID())
	require.NoError(t, err)
	assert.Equal(t, "24.50 USD", got.Price().String())
	assert.Equal(t, 10, got.StockQuantity())
}
