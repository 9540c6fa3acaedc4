package domain

import (
	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// QuoteLine prices one cart line at the catalog's current prices.
type QuoteLine struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice shared.Money
	LineTotal shared.Money
}

// Quote is a non-binding repricing of a whole cart. Unlike order
// lines, quote lines follow the live catalog, not snapshots.
type Quote struct {
	Lines []QuoteLine
	Total shared.Money
}
