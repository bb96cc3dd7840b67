package schedule

import (
	"errors"
	"time"

	"cinema-pos/internal/domain/hall"

	"github.com/google/uuid"
)

var ErrPastDate = errors.New("schedule date is in the past")

// Schedule is a single screening: movie, hall, date and time. The
// (movie, hall, date, time) tuple is unique, enforced by the store.
type Schedule struct {
	id       uuid.UUID
	movieID  uuid.UUID
	hall     hall.Hall
	startsAt time.Time
}

func New(id, movieID uuid.UUID, h hall.Hall, startsAt time.Time) (*Schedule, error) {
	if !h.IsValid() {
		return nil, hall.ErrUnknownHall
	}
	return &Schedule{
		id:       id,
		movieID:  movieID,
		hall:     h,
		startsAt: startsAt,
	}, nil
}

func (s *Schedule) ID() uuid.UUID       { return s.id }
func (s *Schedule) MovieID() uuid.UUID  { return s.movieID }
func (s *Schedule) Hall() hall.Hall     { return s.hall }
func (s *Schedule) StartsAt() time.Time { return s.startsAt }

// Bookable reports whether tickets may still be sold. Policy: the
// screening date must not be in the past; sales on the day of the
// screening are allowed regardless of time. Dates are compared as
// calendar days in the screening's location, not as 24h buckets.
func (s *Schedule) Bookable(now time.Time) bool {
	y, m, d := s.startsAt.Date()
	ny, nm, nd := now.In(s.startsAt.Location()).Date()
	showDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return !showDate.Before(today)
}

func (s *Schedule) ValidateBookable(now time.Time) error {
	if !s.Bookable(now) {
		return ErrPastDate
	}
	return nil
}
