package commands

import (
	"context"

	"cinema-pos/internal/domain/hall"
	"cinema-pos/internal/pkg/clock"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type PricingAdminCommands interface {
	// SetHallPrice updates the per-hall ticket price and appends a price
	// history entry in the same transaction. History is append-only.
	SetHallPrice(ctx context.Context, h hall.Hall, price decimal.Decimal, editorID uuid.UUID) error
	SetAgeDiscount(ctx context.Context, rate decimal.Decimal, editorID uuid.UUID) error
}

type pricingAdminCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPricingAdminCommands(uow shared.UnitOfWork, clk clock.Clock) PricingAdminCommands {
	return &pricingAdminCommandsImpl{uow: uow, clock: clk}
}

func (c *pricingAdminCommandsImpl) SetHallPrice(ctx context.Context, h hall.Hall, price decimal.Decimal, editorID uuid.UUID) error {
	if !h.IsValid() {
		return errs.ErrUnknownHall
	}
	if !price.IsPositive() {
		return errs.ErrInvalidPrice
	}

	return c.setValue(ctx, shared.HallPriceKey(h), "hall_"+h.String()+"_ticket_price", price, editorID)
}

func (c *pricingAdminCommandsImpl) SetAgeDiscount(ctx context.Context, rate decimal.Decimal, editorID uuid.UUID) error {
	if rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return errs.ErrInvalidDiscountRate
	}

	return c.setValue(ctx, shared.KeyAgeDiscountRate, "age_discount_rate", rate, editorID)
}

func (c *pricingAdminCommandsImpl) setValue(ctx context.Context, key shared.ConfigKey, itemName string, value decimal.Decimal, editorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		oldValue, err := tx.PricingConfig().Get(ctx, tx.DB(), key)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.PricingConfig().Set(ctx, tx.DB(), key, value); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		change := shared.PriceChange{
			ChangedAt: c.clock.Now().UTC(),
			ItemName:  itemName,
			OldValue:  oldValue,
			NewValue:  value,
			EditedBy:  editorID,
		}
		if err := tx.PricingConfig().AppendHistory(ctx, tx.DB(), change); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
