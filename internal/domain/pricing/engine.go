package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// VAT is differentiated by line item type and must never be blended into a
// single rate: tickets carry 20%, retail products 10%.
var (
	ticketVATRate  = decimal.NewFromFloat(0.20)
	productVATRate = decimal.NewFromFloat(0.10)
	oneHundred     = decimal.NewFromInt(100)
)

// The age discount applies outside the inclusive working-age band.
const (
	discountAgeBelow = 18
	discountAgeAbove = 60
)

// moneyScale is the number of decimal places all money amounts are kept at.
// Divisions round half-up at this scale.
const moneyScale = 2

// Engine computes per-item prices, the age discount and the per-type VAT.
// It is stateless; hall prices and the discount rate are read from
// configuration by the caller and passed in.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// PriceTicket returns the unit price for one seat and whether the age
// discount was applied. basePrice is the per-hall ticket price,
// discountRate a percentage in [0, 100].
func (e *Engine) PriceTicket(basePrice decimal.Decimal, occupantAge int, discountRate decimal.Decimal) (decimal.Decimal, bool, error) {
	if basePrice.IsNegative() {
		return decimal.Zero, false, ErrNegativePrice
	}

	if !discountApplies(occupantAge) {
		return basePrice.Round(moneyScale), false, nil
	}

	factor := oneHundred.Sub(discountRate).DivRound(oneHundred, moneyScale+2)
	unit := basePrice.Mul(factor).Round(moneyScale)
	return unit, true, nil
}

// PriceProduct returns the line subtotal for qty units.
func (e *Engine) PriceProduct(unitPrice decimal.Decimal, qty int) (decimal.Decimal, error) {
	if unitPrice.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	if qty <= 0 {
		return decimal.Zero, ErrInvalidQuantity
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(qty))).Round(moneyScale), nil
}

// Tax computes the order tax from the ticket and product line subtotals,
// applying each type's VAT rate to its subtotal and summing.
func (e *Engine) Tax(ticketSubtotal, productSubtotal decimal.Decimal) decimal.Decimal {
	ticketTax := ticketSubtotal.Mul(ticketVATRate)
	productTax := productSubtotal.Mul(productVATRate)
	return ticketTax.Add(productTax).Round(moneyScale)
}

func discountApplies(age int) bool {
	return age < discountAgeBelow || age > discountAgeAbove
}
