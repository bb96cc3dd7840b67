package readstore

import (
	"context"

	"cinema-pos/internal/domain/order"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/usecase/queries"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderReadStore struct {
	dbtx db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{dbtx: dbtx}
}

const findOrderSQL = `
SELECT id, cashier_id, status, total::text, created_at, updated_at
FROM orders
WHERE id = $1`

const findOrderItemsSQL = `
SELECT oi.id, oi.item_type, oi.schedule_id, oi.seat_number,
       oi.occupant_first, oi.occupant_last, oi.discount_applied,
       oi.product_id, p.name, oi.quantity, oi.unit_price::text
FROM order_items oi
LEFT JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1
ORDER BY oi.position`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		view     queries.OrderView
		rawTotal string
	)
	err := r.dbtx.QueryRow(ctx, findOrderSQL, id).Scan(
		&view.ID, &view.CashierID, &view.Status, &rawTotal, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	view.Total, err = decimal.NewFromString(rawTotal)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed order total", err)
	}

	rows, err := r.dbtx.Query(ctx, findOrderItemsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item         queries.OrderItemView
			rawUnitPrice string
		)
		err := rows.Scan(
			&item.ID, &item.Type, &item.ScheduleID, &item.SeatNumber,
			&item.OccupantFirst, &item.OccupantLast, &item.DiscountApplied,
			&item.ProductID, &item.ProductName, &item.Quantity, &rawUnitPrice,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		item.UnitPrice, err = decimal.NewFromString(rawUnitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed item unit price", err)
		}
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}

	return &view, nil
}

const findPendingSQL = `
SELECT o.id, o.cashier_id, o.status, o.total::text,
       (SELECT count(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count,
       o.created_at
FROM orders o
WHERE o.status = 'PENDING'
ORDER BY o.created_at`

func (r *OrderReadStore) FindPending(ctx context.Context) ([]*queries.OrderListItem, error) {
	rows, err := r.dbtx.Query(ctx, findPendingSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pending orders", err)
	}
	defer rows.Close()

	var result []*queries.OrderListItem
	for rows.Next() {
		var (
			item     queries.OrderListItem
			rawTotal string
		)
		if err := rows.Scan(&item.ID, &item.CashierID, &item.Status, &rawTotal, &item.ItemCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending order", err)
		}
		item.Total, err = decimal.NewFromString(rawTotal)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed order total", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pending orders", err)
	}
	return result, nil
}

const cancellationStatsSQL = `
SELECT count(*) FILTER (WHERE status = 'PENDING'),
       count(*) FILTER (WHERE status = 'PROCESSED' AND updated_at::date = current_date),
       COALESCE(sum(total) FILTER (WHERE status = 'PROCESSED' AND updated_at::date = current_date), 0)::text
FROM orders`

func (r *OrderReadStore) CancellationStats(ctx context.Context) (*queries.CancellationStats, error) {
	var (
		stats       queries.CancellationStats
		rawRefunded string
	)
	err := r.dbtx.QueryRow(ctx, cancellationStatsSQL).Scan(&stats.PendingCount, &stats.ProcessedToday, &rawRefunded)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute cancellation stats", err)
	}
	stats.RefundedToday, err = decimal.NewFromString(rawRefunded)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed refunded total", err)
	}
	return &stats, nil
}

// FindSnapshotByID rehydrates the write-side view of an order, items
// included, for the cancellation workflow.
func (r *OrderReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	var (
		snap     shared.OrderSnapshot
		rawTotal string
		status   string
	)
	err := r.dbtx.QueryRow(ctx, findOrderSQL, id).Scan(
		&snap.ID, &snap.CashierID, &status, &rawTotal, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	snap.Status, err = order.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed order status", err)
	}
	snap.Total, err = decimal.NewFromString(rawTotal)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed order total", err)
	}

	rows, err := r.dbtx.Query(ctx, findOrderItemsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item         shared.OrderItemSnapshot
			itemType     string
			productName  *string
			rawUnitPrice string
		)
		err := rows.Scan(
			&item.ID, &itemType, &item.ScheduleID, &item.SeatNumber,
			&item.OccupantFirst, &item.OccupantLast, &item.DiscountApplied,
			&item.ProductID, &productName, &item.Quantity, &rawUnitPrice,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		item.Type = order.ItemType(itemType)
		item.UnitPrice, err = decimal.NewFromString(rawUnitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed item unit price", err)
		}
		snap.Items = append(snap.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}

	return &snap, nil
}

var _ queries.OrderViewRepo = (*OrderReadStore)(nil)
