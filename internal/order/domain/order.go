package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// Order is the order lifecycle aggregate. Its total always equals the
// sum of its line totals in a single currency, and every status
// transition is guarded.
type Order struct {
	shared.AggregateRoot

	customerID      uuid.UUID
	number          shared.OrderNumber
	status          Status
	shippingAddress shared.Address
	total           shared.Money
	items           []*OrderItem
	createdAt       time.Time
	updatedAt       time.Time
}

// NewOrder creates an empty pending order shipping to the given
// address.
func NewOrder(customerID uuid.UUID, shippingAddress shared.Address, number shared.OrderNumber) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer id is required", shared.ErrValidation)
	}
	if number.Value() == "" {
		return nil, fmt.Errorf("%w: order number is required", shared.ErrValidation)
	}
	now := time.Now().UTC()
	return &Order{
		AggregateRoot:   shared.NewAggregateRoot(),
		customerID:      customerID,
		number:          number,
		status:          StatusPending,
		shippingAddress: shippingAddress,
		total:           shared.Zero(shared.USD),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func (o *Order) CustomerID() uuid.UUID           { return o.customerID }
func (o *Order) Number() shared.OrderNumber      { return o.number }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) ShippingAddress() shared.Address { return o.shippingAddress }
func (o *Order) Total() shared.Money             { return o.total }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }

// Items returns the order lines in insertion order.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem appends a line to a pending order. Each product may appear
// once, and the unit price currency must match existing lines. The
// total is recomputed from scratch afterwards.
func (o *Order) AddItem(productID uuid.UUID, productName string, unitPrice shared.Money, quantity int) error {
	if o.status != StatusPending {
		return fmt.Errorf("%w: items can only be added to a pending order, status is %s", shared.ErrInvalidState, o.status)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", shared.ErrValidation, quantity)
	}
	for _, item := range o.items {
		if item.ProductID() == productID {
			return fmt.Errorf("%w: product %q is already in this order", shared.ErrDuplicateItem, productName)
		}
	}
	if len(o.items) > 0 && o.items[0].UnitPrice().Currency() != unitPrice.Currency() {
		return fmt.Errorf("%w: order is priced in %s, item is %s",
			shared.ErrCurrencyMismatch, o.items[0].UnitPrice().Currency(), unitPrice.Currency())
	}

	o.items = append(o.items, newOrderItem(o.ID(), productID, productName, unitPrice, quantity))
	o.recalculateTotal()
	o.touch()
	return nil
}

// Place transitions Pending -> Processing once at least one line
// exists, raising OrderPlaced. The orchestrating service calls this
// only after stock has been reserved for every line.
func (o *Order) Place() error {
	if len(o.items) == 0 {
		return fmt.Errorf("%w: cannot place an order with no items", shared.ErrInvalidState)
	}
	if o.status != StatusPending {
		return fmt.Errorf("%w: order %s cannot be placed from status %s", shared.ErrInvalidState, o.number, o.status)
	}
	o.status = StatusProcessing
	o.touch()
	o.RaiseEvent(NewOrderPlaced(o.ID(), o.customerID, o.number.Value()))
	return nil
}

// MarkShipped transitions Processing -> Shipped.
func (o *Order) MarkShipped() error {
	if o.status != StatusProcessing {
		return fmt.Errorf("%w: cannot ship an order with status %s, expected %s", shared.ErrInvalidState, o.status, StatusProcessing)
	}
	o.status = StatusShipped
	o.touch()
	return nil
}

// MarkDelivered transitions Shipped -> Delivered.
func (o *Order) MarkDelivered() error {
	if o.status != StatusShipped {
		return fmt.Errorf("%w: order must be shipped before delivery, status is %s", shared.ErrInvalidState, o.status)
	}
	o.status = StatusDelivered
	o.touch()
	return nil
}

// Cancel is allowed from Pending or Processing only.
func (o *Order) Cancel() error {
	switch o.status {
	case StatusPending, StatusProcessing:
		o.status = StatusCancelled
		o.touch()
		return nil
	default:
		return fmt.Errorf("%w: cannot cancel an order with status %s", shared.ErrInvalidState, o.status)
	}
}

// BelongsTo is the ownership check used by the authorization layer.
func (o *Order) BelongsTo(customerID uuid.UUID) bool {
	return o.customerID == customerID
}

func (o *Order) recalculateTotal() {
	if len(o.items) == 0 {
		o.total = shared.Zero(shared.USD)
		return
	}
	total := shared.Zero(o.items[0].UnitPrice().Currency())
	for _, item := range o.items {
		// single-currency invariant is enforced in AddItem
		total, _ = total.Add(item.LineTotal())
	}
	o.total = total
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
