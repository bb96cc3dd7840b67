//go:build unit

package builder

import (
	"time"

	reqdto "cinema-pos/internal/handler/dto/request"
	"cinema-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderBuilder assembles checkout requests and the matching read model
// for handler tests. Defaults: one full-price hall A ticket and three
// colas.
type OrderBuilder struct {
	OrderID       uuid.UUID
	CashierID     uuid.UUID
	ScheduleID    uuid.UUID
	SeatNumber    int
	OccupantFirst string
	OccupantLast  string
	OccupantAge   int
	ProductID     uuid.UUID
	Quantity      int
	TicketPrice   decimal.Decimal
	ProductPrice  decimal.Decimal
	Status        string
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		OrderID:       uuid.New(),
		CashierID:     uuid.New(),
		ScheduleID:    uuid.New(),
		SeatNumber:    7,
		OccupantFirst: "Ada",
		OccupantLast:  "Yilmaz",
		OccupantAge:   30,
		ProductID:     uuid.New(),
		Quantity:      3,
		TicketPrice:   decimal.RequireFromString("50.00"),
		ProductPrice:  decimal.RequireFromString("15.00"),
		Status:        "PENDING",
		CreatedAt:     time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		Items: []reqdto.CheckoutItemRequest{
			{Ticket: &reqdto.TicketItemRequest{
				ScheduleID:        b.ScheduleID,
				SeatNumber:        b.SeatNumber,
				OccupantFirstName: b.OccupantFirst,
				OccupantLastName:  b.OccupantLast,
				OccupantAge:       b.OccupantAge,
			}},
			{Product: &reqdto.ProductItemRequest{
				ProductID: b.ProductID,
				Quantity:  b.Quantity,
			}},
		},
	}
}

func (b *OrderBuilder) BuildOrderView() *queries.OrderView {
	seat := b.SeatNumber
	first := b.OccupantFirst
	last := b.OccupantLast
	scheduleID := b.ScheduleID
	productID := b.ProductID
	productName := "Cola"

	ticketSubtotal := b.TicketPrice
	productSubtotal := b.ProductPrice.Mul(decimal.NewFromInt(int64(b.Quantity)))
	tax := ticketSubtotal.Mul(decimal.RequireFromString("0.20")).
		Add(productSubtotal.Mul(decimal.RequireFromString("0.10"))).Round(2)

	return &queries.OrderView{
		ID:        b.OrderID,
		CashierID: b.CashierID,
		Status:    b.Status,
		Total:     ticketSubtotal.Add(productSubtotal).Add(tax),
		Items: []queries.OrderItemView{
			{
				ID:         uuid.New(),
				Type:       "TICKET",
				ScheduleID: &scheduleID,
				SeatNumber: &seat,
				OccupantFirst: &first,
				OccupantLast:  &last,
				Quantity:   1,
				UnitPrice:  b.TicketPrice,
			},
			{
				ID:          uuid.New(),
				Type:        "PRODUCT",
				ProductID:   &productID,
				ProductName: &productName,
				Quantity:    b.Quantity,
				UnitPrice:   b.ProductPrice,
			},
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	view := b.BuildOrderView()
	return &queries.OrderListItem{
		ID:        view.ID,
		CashierID: view.CashierID,
		Status:    view.Status,
		Total:     view.Total,
		ItemCount: len(view.Items),
		CreatedAt: view.CreatedAt,
	}
}
