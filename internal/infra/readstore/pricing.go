package readstore

import (
	"context"

	"cinema-pos/internal/domain/hall"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/infra/repository"
	"cinema-pos/internal/usecase/queries"
	"cinema-pos/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type PricingReadStore struct {
	dbtx   db.DBTX
	config *repository.PricingConfigRepository
}

func NewPricingReadStore(dbtx db.DBTX) *PricingReadStore {
	return &PricingReadStore{
		dbtx:   dbtx,
		config: repository.NewPricingConfigRepository(),
	}
}

func (r *PricingReadStore) FindHallPrice(ctx context.Context, h hall.Hall) (decimal.Decimal, error) {
	return r.config.Get(ctx, r.dbtx, shared.HallPriceKey(h))
}

func (r *PricingReadStore) FindAgeDiscountRate(ctx context.Context) (decimal.Decimal, error) {
	return r.config.Get(ctx, r.dbtx, shared.KeyAgeDiscountRate)
}

const findHistorySQL = `
SELECT id, changed_at, item_name, old_value::text, new_value::text, edited_by
FROM price_history
ORDER BY changed_at DESC
LIMIT $1`

func (r *PricingReadStore) FindHistory(ctx context.Context, limit int) ([]*queries.PriceChangeView, error) {
	rows, err := r.dbtx.Query(ctx, findHistorySQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query price history", err)
	}
	defer rows.Close()

	var result []*queries.PriceChangeView
	for rows.Next() {
		var (
			view            queries.PriceChangeView
			rawOld, rawNew string
		)
		if err := rows.Scan(&view.ID, &view.ChangedAt, &view.ItemName, &rawOld, &rawNew, &view.EditedBy); err != nil {
			return nil, infra.WrapRepoErr("failed to scan price history entry", err)
		}
		if view.OldValue, err = decimal.NewFromString(rawOld); err != nil {
			return nil, infra.WrapRepoErr("malformed price history value", err)
		}
		if view.NewValue, err = decimal.NewFromString(rawNew); err != nil {
			return nil, infra.WrapRepoErr("malformed price history value", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read price history", err)
	}
	return result, nil
}

var _ queries.PricingViewRepo = (*PricingReadStore)(nil)
