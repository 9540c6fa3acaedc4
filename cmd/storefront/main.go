package main

import (
	"context"
	"log/slog"
	"os"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartadapter "github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/storefront/internal/catalog/infra/memory"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"

	customerapp "github.com/dwikikusuma/storefront/internal/customer/app"
	customermem "github.com/dwikikusuma/storefront/internal/customer/infra/memory"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderadapter "github.com/dwikikusuma/storefront/internal/order/infra/adapter"
	ordermem "github.com/dwikikusuma/storefront/internal/order/infra/memory"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/events"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service:   cfg.ServiceName,
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: cfg.LogSource,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	dispatcher := events.NewDispatcher(log)
	dispatcher.Subscribe(func(ctx context.Context, ev shared.Event) {
		if placed, ok := ev.(orderdomain.OrderPlaced); ok {
			log.Info("fulfillment notified",
				slog.String("order_number", placed.OrderNumber),
				slog.String("customer_id", placed.CustomerID.String()),
			)
		}
	})

	// Catalog
	productRepo := catalogmem.NewProductRepo()
	catalogSvc := catalogapp.NewService(productRepo, dispatcher, log)

	// Cart
	cartRepo := cartmem.NewCartRepo()
	cartSvc := cartapp.NewService(cartRepo, cartadapter.NewCatalogReader(catalogSvc), log)

	// Customer
	customerRepo := customermem.NewCustomerRepo()
	customerSvc := customerapp.NewService(customerRepo, log)

	// Order
	orderRepo := ordermem.NewOrderRepo()
	orderSvc := orderapp.NewService(
		orderRepo,
		orderadapter.NewStockAdapter(catalogSvc),
		orderadapter.NewCartAdapter(cartSvc),
		dispatcher,
		shared.NewOrderNumberGenerator(),
		log,
	)

	// Checkout
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		10,
		log,
	)

	if err := runDemo(ctx, log, catalogSvc, cartSvc, customerSvc, orderSvc, checkoutSvc); err != nil {
		log.Error("demo run failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("demo run complete")
}

// runDemo walks one customer through the whole lifecycle: browse,
// fill a cart, get a quote, place an order, ship and deliver it.
func runDemo(
	ctx context.Context,
	log *slog.Logger,
	catalogSvc *catalogapp.Service,
	cartSvc *cartapp.Service,
	customerSvc *customerapp.Service,
	orderSvc *orderapp.Service,
	checkoutSvc *checkoutapp.Service,
) error {
	price := func(amount float64) shared.Money {
		m, _ := shared.MoneyFromFloat(amount, shared.USD)
		return m
	}

	keyboard, err := catalogSvc.CreateProduct(ctx, catalogapp.CreateProductInput{
		Name:         "Mechanical Keyboard",
		Description:  "Tenkeyless, hot-swappable switches",
		Price:        price(89.99),
		Category:     "peripherals",
		InitialStock: 25,
		SKU:          "KB-TKL-001",
	})
	if err != nil {
		return err
	}
	if err := catalogSvc.AddVariant(ctx, keyboard.ID(), "KB-TKL-001-R", "switches=red", 10, price(0)); err != nil {
		return err
	}

	mouse, err := catalogSvc.CreateProduct(ctx, catalogapp.CreateProductInput{
		Name:         "Wireless Mouse",
		Description:  "Low-latency 2.4GHz",
		Price:        price(39.50),
		Category:     "peripherals",
		InitialStock: 40,
		SKU:          "MS-WL-010",
	})
	if err != nil {
		return err
	}

	alice, err := customerSvc.Register(ctx, "Alice", "Tan", "alice.tan@example.com", "$2a$10$placeholderhash")
	if err != nil {
		return err
	}

	if err := cartSvc.AddItem(ctx, alice.ID(), keyboard.ID(), 1); err != nil {
		return err
	}
	if err := cartSvc.AddItem(ctx, alice.ID(), mouse.ID(), 2); err != nil {
		return err
	}

	quote, err := checkoutSvc.Quote(ctx, alice.ID())
	if err != nil {
		return err
	}
	log.Info("quote computed", slog.String("total", quote.Total.String()), slog.Int("lines", len(quote.Lines)))

	address, err := shared.NewAddress("1 Orchard Road", "Singapore", "SG", "238801")
	if err != nil {
		return err
	}
	order, err := orderSvc.PlaceOrder(ctx, alice.ID(), address)
	if err != nil {
		return err
	}

	if err := orderSvc.ShipOrder(ctx, order.ID()); err != nil {
		return err
	}
	if err := orderSvc.DeliverOrder(ctx, order.ID()); err != nil {
		return err
	}

	final, err := orderSvc.GetOrder(ctx, order.ID())
	if err != nil {
		return err
	}
	log.Info("order delivered",
		slog.String("order_number", final.Number().Value()),
		slog.String("status", final.Status().String()),
		slog.String("total", final.Total().String()),
	)

	// second order: placed then cancelled, releasing its reservation
	if err := cartSvc.AddItem(ctx, alice.ID(), mouse.ID(), 1); err != nil {
		return err
	}
	second, err := orderSvc.PlaceOrder(ctx, alice.ID(), address)
	if err != nil {
		return err
	}
	if err := orderSvc.CancelOrder(ctx, second.ID()); err != nil {
		return err
	}
	restocked, err := catalogSvc.GetProduct(ctx, mouse.ID())
	if err != nil {
		return err
	}
	log.Info("order cancelled",
		slog.String("order_number", second.Number().Value()),
		slog.Int("mouse_stock", restocked.StockQuantity()),
	)
	return nil
}
