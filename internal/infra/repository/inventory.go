package repository

import (
	"context"

	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"

	"github.com/google/uuid"
)

// InventoryRepository owns the stock counters. Decrement is a single
// conditional UPDATE so a check-then-act race between two checkouts for
// the last units cannot oversell.
type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

const decrementStockSQL = `
UPDATE products
SET stock = stock - $2
WHERE id = $1 AND stock >= $2`

func (r *InventoryRepository) DecrementIfAvailable(ctx context.Context, tx db.DBTX, productID uuid.UUID, qty int) (bool, error) {
	tag, err := tx.Exec(ctx, decrementStockSQL, productID, qty)
	if err != nil {
		if infra.IsCheckViolation(err) {
			return false, infra.WrapRepoErr("stock constraint violated", err, infra.KindCheckViolated)
		}
		return false, infra.WrapRepoErr("failed to decrement stock", err)
	}
	return tag.RowsAffected() == 1, nil
}

const incrementStockSQL = `
UPDATE products
SET stock = stock + $2
WHERE id = $1`

func (r *InventoryRepository) Increment(ctx context.Context, tx db.DBTX, productID uuid.UUID, qty int) error {
	tag, err := tx.Exec(ctx, incrementStockSQL, productID, qty)
	if err != nil {
		return infra.WrapRepoErr("failed to increment stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found for restock", nil, infra.KindNotFound)
	}
	return nil
}
