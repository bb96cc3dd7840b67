package request

import (
	"github.com/shopspring/decimal"
)

// Decimal fields accept JSON numbers or numeric strings; range checks
// live in the usecase layer.

type SetHallPriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

type SetAgeDiscountRequest struct {
	Rate decimal.Decimal `json:"rate"`
}
