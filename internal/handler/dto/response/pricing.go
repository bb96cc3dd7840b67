package response

import (
	"time"

	"cinema-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HallPriceResponse struct {
	Hall  string          `json:"hall"`
	Price decimal.Decimal `json:"price"`
}

type AgeDiscountResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

type PriceChangeResponse struct {
	ID        uuid.UUID       `json:"id"`
	ChangedAt time.Time       `json:"changedAt"`
	ItemName  string          `json:"itemName"`
	OldValue  decimal.Decimal `json:"oldValue"`
	NewValue  decimal.Decimal `json:"newValue"`
	EditedBy  uuid.UUID       `json:"editedBy"`
}

func FromPriceChangeView(rm *queries.PriceChangeView) *PriceChangeResponse {
	return &PriceChangeResponse{
		ID:        rm.ID,
		ChangedAt: rm.ChangedAt,
		ItemName:  rm.ItemName,
		OldValue:  rm.OldValue,
		NewValue:  rm.NewValue,
		EditedBy:  rm.EditedBy,
	}
}
