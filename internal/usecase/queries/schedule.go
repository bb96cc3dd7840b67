package queries

import (
	"context"

	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	// SeatMap returns the hall capacity and the seats currently held by
	// non-rejected orders for a schedule.
	SeatMap(ctx context.Context, scheduleID uuid.UUID) (*SeatMapView, error)
	IsSeatAvailable(ctx context.Context, scheduleID uuid.UUID, seat int) (bool, error)
}

type ScheduleViewRepo interface {
	FindSchedule(ctx context.Context, id uuid.UUID) (*shared.ScheduleSnapshot, error)
	FindTakenSeats(ctx context.Context, scheduleID uuid.UUID) ([]int, error)
}

type scheduleQueriesImpl struct {
	repo ScheduleViewRepo
}

func NewScheduleQueries(repo ScheduleViewRepo) ScheduleQueries {
	return &scheduleQueriesImpl{repo: repo}
}

func (q *scheduleQueriesImpl) SeatMap(ctx context.Context, scheduleID uuid.UUID) (*SeatMapView, error) {
	sched, err := q.repo.FindSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	taken, err := q.repo.FindTakenSeats(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	return &SeatMapView{
		ScheduleID: scheduleID,
		Hall:       sched.Hall.String(),
		Capacity:   sched.Hall.Capacity(),
		TakenSeats: taken,
	}, nil
}

func (q *scheduleQueriesImpl) IsSeatAvailable(ctx context.Context, scheduleID uuid.UUID, seat int) (bool, error) {
	sched, err := q.repo.FindSchedule(ctx, scheduleID)
	if err != nil {
		return false, err
	}
	if !sched.Hall.ContainsSeat(seat) {
		return false, errs.ErrInvalidSeat
	}

	taken, err := q.repo.FindTakenSeats(ctx, scheduleID)
	if err != nil {
		return false, err
	}
	for _, s := range taken {
		if s == seat {
			return false, nil
		}
	}
	return true, nil
}
