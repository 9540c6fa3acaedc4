package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/customer/domain"
	"github.com/dwikikusuma/storefront/internal/shared"
)

// Service orchestrates the Customer aggregate. Password hashing is an
// outer-layer concern; only opaque hashes pass through here.
type Service struct {
	repo CustomerRepo
	log  *slog.Logger
}

func NewService(repo CustomerRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// Register creates an account with a unique email.
func (s *Service) Register(ctx context.Context, firstName, lastName, email, passwordHash string) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(firstName, lastName, email, passwordHash)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, customer.Email().Value())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email %s", shared.ErrAlreadyExists, customer.Email())
	}

	if err := s.repo.Add(ctx, customer); err != nil {
		return nil, err
	}
	s.log.Info("customer registered",
		slog.String("customer_id", customer.ID().String()),
		slog.String("email", customer.Email().Value()),
	)
	return customer, nil
}

func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	parsed, err := shared.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByEmail(ctx, parsed.Value())
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string, shippingAddress *shared.Address) error {
	return s.mutate(ctx, id, func(c *domain.Customer) error {
		return c.UpdateProfile(firstName, lastName, shippingAddress)
	})
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, newPasswordHash string) error {
	return s.mutate(ctx, id, func(c *domain.Customer) error {
		c.ChangePassword(newPasswordHash)
		return nil
	})
}

// PromoteToAdmin is one-way.
func (s *Service) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, id, func(c *domain.Customer) error {
		c.PromoteToAdmin()
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, id uuid.UUID, op func(*domain.Customer) error) error {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := op(customer); err != nil {
		return err
	}
	return s.repo.Update(ctx, customer)
}
