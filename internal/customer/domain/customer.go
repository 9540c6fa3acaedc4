package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// Customer is the account aggregate: identity, profile and an opaque
// password hash. Hashing itself happens outside the domain.
type Customer struct {
	shared.AggregateRoot

	firstName       string
	lastName        string
	email           shared.Email
	passwordHash    string
	shippingAddress *shared.Address
	isAdmin         bool
	createdAt       time.Time
	updatedAt       time.Time
}

// NewCustomer validates the names and email and returns a non-admin
// customer.
func NewCustomer(firstName, lastName, email, passwordHash string) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return nil, fmt.Errorf("%w: first name is required", shared.ErrValidation)
	}
	if lastName == "" {
		return nil, fmt.Errorf("%w: last name is required", shared.ErrValidation)
	}

	addr, err := shared.NewEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Customer{
		AggregateRoot: shared.NewAggregateRoot(),
		firstName:     firstName,
		lastName:      lastName,
		email:         addr,
		passwordHash:  passwordHash,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) Email() shared.Email  { return c.email }
func (c *Customer) PasswordHash() string { return c.passwordHash }
func (c *Customer) IsAdmin() bool        { return c.isAdmin }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// ShippingAddress returns the customer's default shipping address, or
// nil when none is set.
func (c *Customer) ShippingAddress() *shared.Address {
	if c.shippingAddress == nil {
		return nil
	}
	addr := *c.shippingAddress
	return &addr
}

// UpdateProfile revalidates the names and replaces the optional
// shipping address.
func (c *Customer) UpdateProfile(firstName, lastName string, shippingAddress *shared.Address) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return fmt.Errorf("%w: first name is required", shared.ErrValidation)
	}
	if lastName == "" {
		return fmt.Errorf("%w: last name is required", shared.ErrValidation)
	}

	c.firstName = firstName
	c.lastName = lastName
	if shippingAddress != nil {
		addr := *shippingAddress
		c.shippingAddress = &addr
	} else {
		c.shippingAddress = nil
	}
	c.touch()
	return nil
}

// ChangePassword replaces the stored hash unconditionally.
func (c *Customer) ChangePassword(newPasswordHash string) {
	c.passwordHash = newPasswordHash
	c.touch()
}

// PromoteToAdmin is one-way; no demotion exists.
func (c *Customer) PromoteToAdmin() {
	c.isAdmin = true
	c.touch()
}

func (c *Customer) touch() {
	c.updatedAt = time.Now().UTC()
}
