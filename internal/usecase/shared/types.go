package shared

import (
	"fmt"
	"time"

	"cinema-pos/internal/domain/hall"
	"cinema-pos/internal/domain/order"
	"cinema-pos/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshots for command read operations

type ScheduleSnapshot struct {
	ID       uuid.UUID
	MovieID  uuid.UUID
	Hall     hall.Hall
	StartsAt time.Time
}

type ProductSnapshot struct {
	ID        uuid.UUID
	Name      string
	Category  product.Category
	UnitPrice decimal.Decimal
	Stock     int
}

// HasStock is an advisory pre-check; the authoritative guard is the
// conditional decrement in the inventory repository.
func (p ProductSnapshot) HasStock(qty int) bool {
	return qty > 0 && p.Stock >= qty
}

type OrderSnapshot struct {
	ID        uuid.UUID
	CashierID uuid.UUID
	Status    order.Status
	Total     decimal.Decimal
	Items     []OrderItemSnapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItemSnapshot struct {
	ID              uuid.UUID
	Type            order.ItemType
	ScheduleID      *uuid.UUID
	SeatNumber      *int
	OccupantFirst   *string
	OccupantLast    *string
	DiscountApplied bool
	ProductID       *uuid.UUID
	Quantity        int
	UnitPrice       decimal.Decimal
}

// ConfigKey addresses a row of the pricing configuration table.
type ConfigKey string

const (
	KeyHallPriceA      ConfigKey = "hall_price_a"
	KeyHallPriceB      ConfigKey = "hall_price_b"
	KeyAgeDiscountRate ConfigKey = "age_discount_rate"
)

func HallPriceKey(h hall.Hall) ConfigKey {
	if h == hall.HallB {
		return KeyHallPriceB
	}
	return KeyHallPriceA
}

// PriceChange is one append-only price history entry. ChangedAt is
// stamped by the command layer so tests can pin it through the clock.
type PriceChange struct {
	ChangedAt time.Time
	ItemName  string
	OldValue  decimal.Decimal
	NewValue  decimal.Decimal
	EditedBy  uuid.UUID
}

// SeatConflictError reports the first seat that was already taken when a
// reservation attempt failed. The whole reservation is rolled back.
type SeatConflictError struct {
	ScheduleID uuid.UUID
	Seat       int
}

func (e SeatConflictError) Error() string {
	return fmt.Sprintf("seat %d already taken for schedule %s", e.Seat, e.ScheduleID)
}

// InsufficientStockError reports the product whose stock could not cover
// the requested quantity.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested %d)", e.ProductID, e.Requested)
}
