package response

import (
	"time"

	"cinema-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	Type            string          `json:"type"`
	ScheduleID      *uuid.UUID      `json:"scheduleId,omitempty"`
	SeatNumber      *int            `json:"seatNumber,omitempty"`
	OccupantFirst   *string         `json:"occupantFirst,omitempty"`
	OccupantLast    *string         `json:"occupantLast,omitempty"`
	DiscountApplied bool            `json:"discountApplied"`
	ProductID       *uuid.UUID      `json:"productId,omitempty"`
	ProductName     *string         `json:"productName,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	CashierID uuid.UUID           `json:"cashierId"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID        uuid.UUID       `json:"id"`
	CashierID uuid.UUID       `json:"cashierId"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CancellationStatsResponse struct {
	PendingCount   int64           `json:"pendingCount"`
	ProcessedToday int64           `json:"processedToday"`
	RefundedToday  decimal.Decimal `json:"refundedToday"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	resp := &OrderResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromOrderListItem(rm *queries.OrderListItem) *OrderListResponse {
	resp := &OrderListResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromCancellationStats(rm *queries.CancellationStats) *CancellationStatsResponse {
	return &CancellationStatsResponse{
		PendingCount:   rm.PendingCount,
		ProcessedToday: rm.ProcessedToday,
		RefundedToday:  rm.RefundedToday,
	}
}
