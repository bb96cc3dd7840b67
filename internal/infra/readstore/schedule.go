package readstore

import (
	"context"
	"time"

	"cinema-pos/internal/domain/hall"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	dbtx db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{dbtx: dbtx}
}

const findScheduleSQL = `
SELECT id, movie_id, hall, (show_date + show_time)::timestamptz
FROM schedules
WHERE id = $1`

func (r *ScheduleReadStore) FindSchedule(ctx context.Context, id uuid.UUID) (*shared.ScheduleSnapshot, error) {
	var (
		snap     shared.ScheduleSnapshot
		rawHall  string
		startsAt time.Time
	)
	err := r.dbtx.QueryRow(ctx, findScheduleSQL, id).Scan(&snap.ID, &snap.MovieID, &rawHall, &startsAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule by ID", err)
	}

	h, err := hall.New(rawHall)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed hall identifier", err)
	}
	snap.Hall = h
	snap.StartsAt = startsAt
	return &snap, nil
}

const scheduleTakenSeatsSQL = `
SELECT seat_number FROM seat_reservations
WHERE schedule_id = $1
ORDER BY seat_number`

func (r *ScheduleReadStore) FindTakenSeats(ctx context.Context, scheduleID uuid.UUID) ([]int, error) {
	rows, err := r.dbtx.Query(ctx, scheduleTakenSeatsSQL, scheduleID)
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
