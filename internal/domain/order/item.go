package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
	ErrMissingOccupant   = errors.New("occupant name required")
	ErrInvalidSeatNumber = errors.New("seat number must be positive")
)

// TicketLine holds the ticket-variant attributes of an item.
type TicketLine struct {
	ScheduleID      uuid.UUID
	SeatNumber      int
	OccupantFirst   string
	OccupantLast    string
	DiscountApplied bool
}

// ProductLine holds the product-variant attributes of an item.
type ProductLine struct {
	ProductID uuid.UUID
}

// Item is one line of an order. Exactly one of the ticket/product details
// is populated, matching the type discriminator. The unit price is a
// snapshot taken at sale time and never changes afterwards.
type Item struct {
	itemType  ItemType
	unitPrice decimal.Decimal
	quantity  int
	ticket    *TicketLine
	product   *ProductLine
}

// NewTicketItem builds a ticket line. Tickets always carry quantity 1:
// one item row per seat.
func NewTicketItem(scheduleID uuid.UUID, seatNumber int, occupantFirst, occupantLast string, unitPrice decimal.Decimal, discountApplied bool) (Item, error) {
	if seatNumber < 1 {
		return Item{}, ErrInvalidSeatNumber
	}
	if unitPrice.IsNegative() {
		return Item{}, ErrNegativeUnitPrice
	}
	occupantFirst = strings.TrimSpace(occupantFirst)
	occupantLast = strings.TrimSpace(occupantLast)
	if occupantFirst == "" || occupantLast == "" {
		return Item{}, ErrMissingOccupant
	}

	return Item{
		itemType:  ItemTicket,
		unitPrice: unitPrice,
		quantity:  1,
		ticket: &TicketLine{
			ScheduleID:      scheduleID,
			SeatNumber:      seatNumber,
			OccupantFirst:   occupantFirst,
			OccupantLast:    occupantLast,
			DiscountApplied: discountApplied,
		},
	}, nil
}

func NewProductItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return Item{}, ErrNegativeUnitPrice
	}

	return Item{
		itemType:  ItemProduct,
		unitPrice: unitPrice,
		quantity:  quantity,
		product:   &ProductLine{ProductID: productID},
	}, nil
}

// ReconstructItem rehydrates an item from storage without revalidating.
func ReconstructItem(itemType ItemType, unitPrice decimal.Decimal, quantity int, ticket *TicketLine, product *ProductLine) Item {
	return Item{
		itemType:  itemType,
		unitPrice: unitPrice,
		quantity:  quantity,
		ticket:    ticket,
		product:   product,
	}
}

func (i Item) Type() ItemType               { return i.itemType }
func (i Item) UnitPrice() decimal.Decimal   { return i.unitPrice }
func (i Item) Quantity() int                { return i.quantity }
func (i Item) Ticket() *TicketLine          { return i.ticket }
func (i Item) Product() *ProductLine        { return i.product }

func (i Item) IsTicket() bool {
	return i.itemType == ItemTicket
}

// Subtotal is unit price times quantity, before tax.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
