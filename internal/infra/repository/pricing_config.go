package repository

import (
	"context"

	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingConfigRepository struct{}

func NewPricingConfigRepository() *PricingConfigRepository {
	return &PricingConfigRepository{}
}

const getConfigSQL = `
SELECT value::text FROM pricing_config WHERE key = $1`

func (r *PricingConfigRepository) Get(ctx context.Context, dbtx db.DBTX, key shared.ConfigKey) (decimal.Decimal, error) {
	var raw string
	if err := dbtx.QueryRow(ctx, getConfigSQL, string(key)).Scan(&raw); err != nil {
		if infra.IsNoRows(err) {
			return decimal.Zero, infra.WrapRepoErr("pricing config key not found", err, infra.KindNotFound)
		}
		return decimal.Zero, infra.WrapRepoErr("failed to read pricing config", err)
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("malformed pricing config value", err)
	}
	return value, nil
}

const setConfigSQL = `
UPDATE pricing_config SET value = $2::numeric WHERE key = $1`

func (r *PricingConfigRepository) Set(ctx context.Context, tx db.DBTX, key shared.ConfigKey, value decimal.Decimal) error {
	tag, err := tx.Exec(ctx, setConfigSQL, string(key), value.StringFixed(2))
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing config", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing config key not found", nil, infra.KindNotFound)
	}
	return nil
}

const appendHistorySQL = `
INSERT INTO price_history (id, changed_at, item_name, old_value, new_value, edited_by)
VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6)`

// AppendHistory records a price change. The table is append-only; no code
// path updates or deletes history rows. The timestamp comes from the
// caller, which takes it from the injected clock.
func (r *PricingConfigRepository) AppendHistory(ctx context.Context, tx db.DBTX, change shared.PriceChange) error {
	_, err := tx.Exec(ctx, appendHistorySQL,
		uuid.New(), change.ChangedAt, change.ItemName,
		change.OldValue.StringFixed(2), change.NewValue.StringFixed(2), change.EditedBy,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append price history", err)
	}
	return nil
}
