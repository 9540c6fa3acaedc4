package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

// Service orchestrates the Order aggregate and sequences the
// cross-aggregate placement flow: build the order from the cart,
// reserve stock per line, place, persist, dispatch, clear the cart.
type Service struct {
	repo       OrderRepo
	stock      StockReservations
	cart       CartReader
	dispatcher Dispatcher
	numbers    shared.OrderNumberGenerator
	log        *slog.Logger
}

func NewService(repo OrderRepo, stock StockReservations, cart CartReader, dispatcher Dispatcher, numbers shared.OrderNumberGenerator, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:       repo,
		stock:      stock,
		cart:       cart,
		dispatcher: dispatcher,
		numbers:    numbers,
		log:        log,
	}
}

// PlaceOrder turns the customer's cart into a placed order. Stock is
// reserved line by line; a failed reservation rolls back the ones
// already taken and leaves cart and catalog unchanged.
func (s *Service) PlaceOrder(ctx context.Context, customerID uuid.UUID, shippingAddress shared.Address) (*domain.Order, error) {
	lines, err := s.cart.Lines(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", shared.ErrInvalidState)
	}

	order, err := domain.NewOrder(customerID, shippingAddress, s.numbers.Next())
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := order.AddItem(line.ProductID, line.ProductName, line.UnitPrice, line.Quantity); err != nil {
			return nil, err
		}
	}

	reserved := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if err := s.stock.Reserve(ctx, line.ProductID, line.Quantity); err != nil {
			s.compensate(ctx, reserved)
			return nil, err
		}
		reserved = append(reserved, line)
	}

	if err := order.Place(); err != nil {
		s.compensate(ctx, reserved)
		return nil, err
	}
	if err := s.repo.Add(ctx, order); err != nil {
		s.compensate(ctx, reserved)
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, order.Events()...)
	order.ClearEvents()

	if err := s.cart.Clear(ctx, customerID); err != nil {
		// the order is already placed; a stale cart is recoverable
		s.log.Warn("failed to clear cart after placement",
			slog.String("customer_id", customerID.String()),
			slog.Any("err", err),
		)
	}

	s.log.Info("order placed",
		slog.String("order_id", order.ID().String()),
		slog.String("order_number", order.Number().Value()),
		slog.String("total", order.Total().String()),
	)
	return order, nil
}

// ShipOrder transitions a processing order to shipped.
func (s *Service) ShipOrder(ctx context.Context, orderID uuid.UUID) error {
	return s.mutate(ctx, orderID, func(o *domain.Order) error {
		return o.MarkShipped()
	})
}

// DeliverOrder transitions a shipped order to delivered.
func (s *Service) DeliverOrder(ctx context.Context, orderID uuid.UUID) error {
	return s.mutate(ctx, orderID, func(o *domain.Order) error {
		return o.MarkDelivered()
	})
}

// CancelOrder cancels a pending or processing order. Stock was only
// reserved if the order reached Processing, so only then is it
// restored.
func (s *Service) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	wasProcessing := order.Status() == domain.StatusProcessing
	if err := order.Cancel(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, order); err != nil {
		return err
	}

	if wasProcessing {
		for _, item := range order.Items() {
			if err := s.stock.Restore(ctx, item.ProductID(), item.Quantity()); err != nil {
				s.log.Warn("failed to restore stock on cancellation",
					slog.String("order_id", orderID.String()),
					slog.String("product_id", item.ProductID().String()),
					slog.Any("err", err),
				)
			}
		}
	}

	s.log.Info("order cancelled", slog.String("order_id", orderID.String()))
	return nil
}

func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	parsed, err := shared.OrderNumberFrom(number)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByNumber(ctx, parsed.Value())
}

func (s *Service) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*domain.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) mutate(ctx context.Context, orderID uuid.UUID, op func(*domain.Order) error) error {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := op(order); err != nil {
		return err
	}
	return s.repo.Update(ctx, order)
}

func (s *Service) compensate(ctx context.Context, reserved []CartLine) {
	for _, line := range reserved {
		if err := s.stock.Restore(ctx, line.ProductID, line.Quantity); err != nil {
			s.log.Warn("failed to roll back stock reservation",
				slog.String("product_id", line.ProductID.String()),
				slog.Any("err", err),
			)
		}
	}
}
