package domain

import (
	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// ProductVariant is a child entity of Product: one concrete version of
// the product ("Red, Large" vs "Blue, Small") with its own SKU, stock
// and a price modifier applied on top of the parent's price.
type ProductVariant struct {
	shared.Entity

	productID     uuid.UUID
	sku           shared.ProductSku
	attributes    string
	stock         int
	priceModifier shared.Money
}

func newProductVariant(productID uuid.UUID, sku shared.ProductSku, attributes string, stock int, priceModifier shared.Money) *ProductVariant {
	return &ProductVariant{
		Entity:        shared.NewEntity(),
		productID:     productID,
		sku:           sku,
		attributes:    attributes,
		stock:         stock,
		priceModifier: priceModifier,
	}
}

func (v *ProductVariant) ProductID() uuid.UUID         { return v.productID }
func (v *ProductVariant) SKU() shared.ProductSku       { return v.sku }
func (v *ProductVariant) Attributes() string           { return v.attributes }
func (v *ProductVariant) StockQuantity() int           { return v.stock }
func (v *ProductVariant) PriceModifier() shared.Money { return v.priceModifier }

// Price is the parent's price adjusted by this variant's modifier.
func (v *ProductVariant) Price(base shared.Money) (shared.Money, error) {
	return base.Add(v.priceModifier)
}
