package request

import (
	"strings"

	"cinema-pos/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CheckoutItemRequest carries exactly one of Ticket or Product; the
// usecase rejects lines that set both or neither.
type CheckoutItemRequest struct {
	Ticket  *TicketItemRequest  `json:"ticket,omitempty"`
	Product *ProductItemRequest `json:"product,omitempty"`
}

type TicketItemRequest struct {
	ScheduleID        uuid.UUID `json:"schedule_id" binding:"required"`
	SeatNumber        int       `json:"seat_number" binding:"required,min=1"`
	OccupantFirstName string    `json:"occupant_first_name" binding:"required"`
	OccupantLastName  string    `json:"occupant_last_name" binding:"required"`
	OccupantAge       int       `json:"occupant_age" binding:"min=0,max=150"`
}

type ProductItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

func (r CheckoutRequest) ToCommand() []commands.CheckoutItem {
	items := make([]commands.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		var item commands.CheckoutItem
		if it.Ticket != nil {
			item.Ticket = &commands.TicketRequest{
				ScheduleID:    it.Ticket.ScheduleID,
				SeatNumber:    it.Ticket.SeatNumber,
				OccupantFirst: strings.TrimSpace(it.Ticket.OccupantFirstName),
				OccupantLast:  strings.TrimSpace(it.Ticket.OccupantLastName),
				OccupantAge:   it.Ticket.OccupantAge,
			}
		}
		if it.Product != nil {
			item.Product = &commands.ProductRequest{
				ProductID: it.Product.ProductID,
				Quantity:  it.Product.Quantity,
			}
		}
		items = append(items, item)
	}
	return items
}
