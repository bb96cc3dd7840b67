package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type OrderItemView struct {
	ID              uuid.UUID       `json:"id"`
	Type            string          `json:"type"`
	ScheduleID      *uuid.UUID      `json:"schedule_id,omitempty"`
	SeatNumber      *int            `json:"seat_number,omitempty"`
	OccupantFirst   *string         `json:"occupant_first,omitempty"`
	OccupantLast    *string         `json:"occupant_last,omitempty"`
	DiscountApplied bool            `json:"discount_applied"`
	ProductID       *uuid.UUID      `json:"product_id,omitempty"`
	ProductName     *string         `json:"product_name,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	CashierID uuid.UUID       `json:"cashier_id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItemView `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID        uuid.UUID       `json:"id"`
	CashierID uuid.UUID       `json:"cashier_id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	CreatedAt time.Time       `json:"created_at"`
}

type CancellationStats struct {
	PendingCount   int64           `json:"pending_count"`
	ProcessedToday int64           `json:"processed_today"`
	RefundedToday  decimal.Decimal `json:"refunded_today"`
}

type PriceChangeView struct {
	ID        uuid.UUID       `json:"id"`
	ChangedAt time.Time       `json:"changed_at"`
	ItemName  string          `json:"item_name"`
	OldValue  decimal.Decimal `json:"old_value"`
	NewValue  decimal.Decimal `json:"new_value"`
	EditedBy  uuid.UUID       `json:"edited_by"`
}

type SeatMapView struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	Hall       string    `json:"hall"`
	Capacity   int       `json:"capacity"`
	TakenSeats []int     `json:"taken_seats"`
}

type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
}
