package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

// Service orchestrates the ShoppingCart aggregate. Product name and
// price are snapshotted from the catalog when a line is added.
type Service struct {
	repo    CartRepo
	catalog ProductReader
	log     *slog.Logger
}

func NewService(repo CartRepo, catalog ProductReader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, catalog: catalog, log: log}
}

// GetOrCreateCart returns the customer's cart, creating an empty one
// on first use.
func (s *Service) GetOrCreateCart(ctx context.Context, customerID uuid.UUID) (*domain.ShoppingCart, error) {
	cart, err := s.repo.GetByCustomerID(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	cart, err = domain.NewShoppingCart(customerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Add(ctx, cart); err != nil {
		// lost the race to a concurrent first use
		if errors.Is(err, shared.ErrAlreadyExists) {
			return s.repo.GetByCustomerID(ctx, customerID)
		}
		return nil, err
	}
	s.log.Info("cart created",
		slog.String("cart_id", cart.ID().String()),
		slog.String("customer_id", customerID.String()),
	)
	return cart, nil
}

func (s *Service) GetCart(ctx context.Context, customerID uuid.UUID) (*domain.ShoppingCart, error) {
	return s.repo.GetByCustomerID(ctx, customerID)
}

// AddItem snapshots the product's current name and price into the
// customer's cart. Deleted products cannot be added.
func (s *Service) AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int) error {
	snapshot, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if !snapshot.Available {
		return fmt.Errorf("%w: product %s is not available", shared.ErrInvalidState, productID)
	}

	cart, err := s.GetOrCreateCart(ctx, customerID)
	if err != nil {
		return err
	}
	if err := cart.AddItem(snapshot.ID, snapshot.Name, snapshot.Price, quantity); err != nil {
		return err
	}
	return s.repo.Update(ctx, cart)
}

// UpdateItemQuantity sets a line's quantity; zero or less removes the
// line.
func (s *Service) UpdateItemQuantity(ctx context.Context, customerID, productID uuid.UUID, newQuantity int) error {
	cart, err := s.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	if err := cart.UpdateItemQuantity(productID, newQuantity); err != nil {
		return err
	}
	return s.repo.Update(ctx, cart)
}

func (s *Service) RemoveItem(ctx context.Context, customerID, productID uuid.UUID) error {
	cart, err := s.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	if err := cart.RemoveItem(productID); err != nil {
		return err
	}
	return s.repo.Update(ctx, cart)
}

func (s *Service) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	cart, err := s.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	cart.Clear()
	return s.repo.Update(ctx, cart)
}
