package commands

import (
	"context"

	"cinema-pos/internal/domain/order"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

type CancellationCommands interface {
	// Process approves the cancellation: the order moves to PROCESSED,
	// product stock is restored and the reserved seats are released, all
	// in one transaction.
	Process(ctx context.Context, orderID uuid.UUID) error
	// Reject moves the order to REJECTED. Inventory is untouched; the
	// seats held by the order become available again (rejected orders do
	// not occupy seats).
	Reject(ctx context.Context, orderID uuid.UUID) error
}

type cancellationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCancellationCommands(uow shared.UnitOfWork) CancellationCommands {
	return &cancellationCommandsImpl{uow: uow}
}

func (c *cancellationCommandsImpl) Process(ctx context.Context, orderID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.loadOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}

		if err := c.transition(ctx, tx, snap, order.StatusProcessed); err != nil {
			return err
		}

		for _, item := range snap.Items {
			if item.Type == order.ItemProduct && item.ProductID != nil {
				if err := tx.Inventory().Increment(ctx, tx.DB(), *item.ProductID, item.Quantity); err != nil {
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
			}
		}

		return c.releaseSeats(ctx, tx, snap)
	})
}

func (c *cancellationCommandsImpl) Reject(ctx context.Context, orderID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.loadOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}

		if err := c.transition(ctx, tx, snap, order.StatusRejected); err != nil {
			return err
		}

		return c.releaseSeats(ctx, tx, snap)
	})
}

func (c *cancellationCommandsImpl) loadOrder(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*shared.OrderSnapshot, error) {
	snap, err := tx.Reads().OrderByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

// transition applies the guarded update. The WHERE status = 'PENDING'
// clause decides the race; the snapshot only supplies the From value for
// the error report.
func (c *cancellationCommandsImpl) transition(ctx context.Context, tx shared.Tx, snap *shared.OrderSnapshot, next order.Status) error {
	moved, err := tx.Orders().UpdateStatusFromPending(ctx, tx.DB(), snap.ID, next)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !moved {
		return errs.Mark(order.TransitionError{From: snap.Status, To: next}, errs.ErrInvalidTransition)
	}
	return nil
}

func (c *cancellationCommandsImpl) releaseSeats(ctx context.Context, tx shared.Tx, snap *shared.OrderSnapshot) error {
	seatsBySchedule := map[uuid.UUID][]int{}
	for _, item := range snap.Items {
		if item.Type == order.ItemTicket && item.ScheduleID != nil && item.SeatNumber != nil {
			seatsBySchedule[*item.ScheduleID] = append(seatsBySchedule[*item.ScheduleID], *item.SeatNumber)
		}
	}

	for scheduleID, seats := range seatsBySchedule {
		if err := tx.Seats().Release(ctx, tx.DB(), scheduleID, seats); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}
