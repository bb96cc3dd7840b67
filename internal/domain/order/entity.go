package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoItems = errors.New("order must contain at least one item")

// Order is a single checkout transaction. It exclusively owns its items;
// their insertion order is preserved for receipt reproduction. Orders are
// never deleted, they serve as the audit record of the sale.
type Order struct {
	id        uuid.UUID
	cashierID uuid.UUID
	status    Status
	total     decimal.Decimal
	items     []Item
	createdAt time.Time
	updatedAt time.Time
}

// NewOrder builds a PENDING order from priced items and the computed tax.
// The total is derived here so the invariant
// total == sum(subtotals) + tax holds by construction.
func NewOrder(cashierID uuid.UUID, items []Item, tax decimal.Decimal, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := tax
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}

	return &Order{
		id:        uuid.New(),
		cashierID: cashierID,
		status:    StatusPending,
		total:     total,
		items:     items,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, cashierID uuid.UUID, status Status, total decimal.Decimal, items []Item, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:        id,
		cashierID: cashierID,
		status:    status,
		total:     total,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Transition moves the order to a terminal status. It fails with a
// TransitionError when the current status is not PENDING, leaving the
// order unchanged.
func (o *Order) Transition(next Status, now time.Time) error {
	if !o.status.CanTransitionTo(next) {
		return TransitionError{From: o.status, To: next}
	}
	o.status = next
	o.updatedAt = now
	return nil
}

// TicketItems returns the ticket lines in insertion order.
func (o *Order) TicketItems() []Item {
	var out []Item
	for _, it := range o.items {
		if it.IsTicket() {
			out = append(out, it)
		}
	}
	return out
}

// ProductItems returns the product lines in insertion order.
func (o *Order) ProductItems() []Item {
	var out []Item
	for _, it := range o.items {
		if !it.IsTicket() {
			out = append(out, it)
		}
	}
	return out
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) CashierID() uuid.UUID   { return o.cashierID }
func (o *Order) Status() Status         { return o.status }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Items() []Item          { return o.items }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
