package repository

import (
	"context"

	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

// SeatRepository mutates the seat_reservations table. The
// (schedule_id, seat_number) primary key is the double-booking guard: two
// transactions racing for one seat resolve so exactly one insert succeeds.
type SeatRepository struct{}

func NewSeatRepository() *SeatRepository {
	return &SeatRepository{}
}

const insertSeatSQL = `
INSERT INTO seat_reservations (schedule_id, seat_number, order_id)
VALUES ($1, $2, $3)`

func (r *SeatRepository) Reserve(ctx context.Context, tx db.DBTX, orderID, scheduleID uuid.UUID, seats []int) error {
	for _, seat := range seats {
		if _, err := tx.Exec(ctx, insertSeatSQL, scheduleID, seat, orderID); err != nil {
			if infra.IsUniqueViolation(err) {
				return shared.SeatConflictError{ScheduleID: scheduleID, Seat: seat}
			}
			return infra.WrapRepoErr("failed to reserve seat", err)
		}
	}
	return nil
}

const deleteSeatsSQL = `
DELETE FROM seat_reservations
WHERE schedule_id = $1 AND seat_number = ANY($2)`

func (r *SeatRepository) Release(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, seats []int) error {
	if len(seats) == 0 {
		return nil
	}
	if _, err := tx.Exec(ctx, deleteSeatsSQL, scheduleID, seats); err != nil {
		return infra.WrapRepoErr("failed to release seats", err)
	}
	return nil
}

const takenSeatsSQL = `
SELECT seat_number FROM seat_reservations
WHERE schedule_id = $1
ORDER BY seat_number`

func (r *SeatRepository) TakenSeats(ctx context.Context, dbtx db.DBTX, scheduleID uuid.UUID) ([]int, error) {
	rows, err := dbtx.Query(ctx, takenSeatsSQL, scheduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query taken seats", err)
	}
	defer rows.Close()

	var seats []int
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seat number", err)
		}
		seats = append(seats, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read taken seats", err)
	}
	return seats, nil
}
