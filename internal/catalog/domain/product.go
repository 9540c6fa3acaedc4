package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// Product is the catalog aggregate root: a sellable entry with price,
// stock and a soft-delete lifecycle. Stock never goes negative; a
// reservation that would is rejected outright.
type Product struct {
	shared.AggregateRoot

	name        string
	description string
	price       shared.Money
	category    string
	stock       int
	sku         shared.ProductSku
	deleted     bool
	createdAt   time.Time
	updatedAt   time.Time

	variants []*ProductVariant
}

// NewProduct validates name, category and initial stock and returns a
// live, non-deleted product.
func NewProduct(name, description string, price shared.Money, category string, initialStock int, sku shared.ProductSku) (*Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", shared.ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", shared.ErrValidation)
	}
	if initialStock < 0 {
		return nil, fmt.Errorf("%w: initial stock cannot be negative, got %d", shared.ErrValidation, initialStock)
	}

	now := time.Now().UTC()
	return &Product{
		AggregateRoot: shared.NewAggregateRoot(),
		name:          name,
		description:   strings.TrimSpace(description),
		price:         price,
		category:      category,
		stock:         initialStock,
		sku:           sku,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (p *Product) Name() string           { return p.name }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() shared.Money    { return p.price }
func (p *Product) Category() string       { return p.category }
func (p *Product) StockQuantity() int     { return p.stock }
func (p *Product) SKU() shared.ProductSku { return p.sku }
func (p *Product) IsDeleted() bool        { return p.deleted }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }

// Variants returns the product's variants in creation order.
func (p *Product) Variants() []*ProductVariant {
	out := make([]*ProductVariant, len(p.variants))
	copy(out, p.variants)
	return out
}

// UpdateDetails revalidates and replaces name, description and
// category.
func (p *Product) UpdateDetails(name, description, category string) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return fmt.Errorf("%w: product name is required", shared.ErrValidation)
	}
	if category == "" {
		return fmt.Errorf("%w: category is required", shared.ErrValidation)
	}

	p.name = name
	p.description = strings.TrimSpace(description)
	p.category = category
	p.touch()
	return nil
}

// UpdatePrice replaces the price unconditionally.
func (p *Product) UpdatePrice(newPrice shared.Money) {
	p.price = newPrice
	p.touch()
}

// AddStock increases stock by a positive quantity.
func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity to add must be positive, got %d", shared.ErrValidation, quantity)
	}
	p.stock += quantity
	p.touch()
	return nil
}

// ReserveStock decrements stock for an order being placed. Driven by
// the order placement flow, not by public API consumers. Raises
// StockReserved on success.
func (p *Product) ReserveStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity to reserve must be positive, got %d", shared.ErrValidation, quantity)
	}
	if quantity > p.stock {
		return fmt.Errorf("%w: product %q has %d in stock, requested %d",
			shared.ErrInsufficientStock, p.name, p.stock, quantity)
	}
	p.stock -= quantity
	p.touch()
	p.RaiseEvent(NewStockReserved(p.ID(), quantity))
	return nil
}

// RestoreStock reverses a reservation, e.g. when an order is
// cancelled.
func (p *Product) RestoreStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity to restore must be positive, got %d", shared.ErrValidation, quantity)
	}
	p.stock += quantity
	p.touch()
	return nil
}

// AddVariant creates a variant through the parent; variants are never
// constructed from outside the aggregate.
func (p *Product) AddVariant(sku shared.ProductSku, attributes string, stockQuantity int, priceModifier shared.Money) (*ProductVariant, error) {
	if stockQuantity < 0 {
		return nil, fmt.Errorf("%w: variant stock cannot be negative, got %d", shared.ErrValidation, stockQuantity)
	}
	for _, v := range p.variants {
		if v.SKU().Value() == sku.Value() {
			return nil, fmt.Errorf("%w: variant SKU %s", shared.ErrDuplicateItem, sku)
		}
	}
	variant := newProductVariant(p.ID(), sku, strings.TrimSpace(attributes), stockQuantity, priceModifier)
	p.variants = append(p.variants, variant)
	p.touch()
	return variant, nil
}

// SoftDelete hides the product without destroying history.
func (p *Product) SoftDelete() {
	p.deleted = true
	p.touch()
}

// Restore makes a soft-deleted product visible again.
func (p *Product) Restore() {
	p.deleted = false
	p.touch()
}

func (p *Product) touch() {
	p.updatedAt = time.Now().UTC()
}
