package readstore

import (
	"context"

	"cinema-pos/internal/domain/product"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductReadStore struct {
	dbtx db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{dbtx: dbtx}
}

const findProductSQL = `
SELECT id, name, category, unit_price::text, stock
FROM products
WHERE id = $1`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	var (
		snap     shared.ProductSnapshot
		category string
		rawPrice string
	)
	err := r.dbtx.QueryRow(ctx, findProductSQL, id).Scan(&snap.ID, &snap.Name, &category, &rawPrice, &snap.Stock)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	snap.Category = product.Category(category)
	snap.UnitPrice, err = decimal.NewFromString(rawPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed product unit price", err)
	}
	return &snap, nil
}
