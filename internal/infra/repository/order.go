package repository

import (
	"context"

	"cinema-pos/internal/domain/order"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const insertOrderSQL = `
INSERT INTO orders (id, cashier_id, status, total, created_at, updated_at)
VALUES ($1, $2, $3, $4::numeric, $5, $6)
RETURNING id`

const insertOrderItemSQL = `
INSERT INTO order_items (
	id, order_id, position, item_type,
	schedule_id, seat_number, occupant_first, occupant_last, discount_applied,
	product_id, quantity, unit_price
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12::numeric)`

// Create persists the order and its items in insertion order. Must run
// inside the checkout transaction so seat and stock effects commit with it.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertOrderSQL,
		o.ID(), o.CashierID(), o.Status().String(), o.Total().StringFixed(2), o.CreatedAt(), o.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("order id already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for pos, it := range o.Items() {
		var (
			scheduleID, productID       *uuid.UUID
			seatNumber                  *int
			occupantFirst, occupantLast *string
			discountApplied             bool
		)
		if t := it.Ticket(); t != nil {
			scheduleID = &t.ScheduleID
			seatNumber = &t.SeatNumber
			occupantFirst = &t.OccupantFirst
			occupantLast = &t.OccupantLast
			discountApplied = t.DiscountApplied
		}
		if p := it.Product(); p != nil {
			productID = &p.ProductID
		}

		_, err := tx.Exec(ctx, insertOrderItemSQL,
			uuid.New(), id, pos, string(it.Type()),
			scheduleID, seatNumber, occupantFirst, occupantLast, discountApplied,
			productID, it.Quantity(), it.UnitPrice().StringFixed(2),
		)
		if err != nil {
			if infra.IsForeignKeyViolation(err) {
				return uuid.Nil, infra.WrapRepoErr("order item references missing schedule or product", err, infra.KindForeignKeyViolated)
			}
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return id, nil
}

const updateStatusSQL = `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1 AND status = 'PENDING'`

// UpdateStatusFromPending is the guarded state transition. Zero rows
// affected means the order was not PENDING (or does not exist); the caller
// distinguishes the two via a prior read.
func (r *OrderRepository) UpdateStatusFromPending(ctx context.Context, tx db.DBTX, id uuid.UUID, next order.Status) (bool, error) {
	tag, err := tx.Exec(ctx, updateStatusSQL, id, next.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order status", err)
	}
	return tag.RowsAffected() == 1, nil
}
