//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"cinema-pos/internal/domain/hall"
	"cinema-pos/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		id := uuid.New()
		movieID := uuid.New()
		startsAt := time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC)

		s, err := schedule.New(id, movieID, hall.HallB, startsAt)
		require.NoError(t, err)
		assert.Equal(t, id, s.ID())
		assert.Equal(t, movieID, s.MovieID())
		assert.Equal(t, hall.HallB, s.Hall())
		assert.Equal(t, startsAt, s.StartsAt())
	})

	t.Run("unknown hall rejected", func(t *testing.T) {
		_, err := schedule.New(uuid.New(), uuid.New(), hall.Hall("Z"), time.Now())
		assert.ErrorIs(t, err, hall.ErrUnknownHall)
	})
}

func TestBookable(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	newSchedule := func(t *testing.T, startsAt time.Time) *schedule.Schedule {
		t.Helper()
		s, err := schedule.New(uuid.New(), uuid.New(), hall.HallA, startsAt)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name     string
		startsAt time.Time
		want     bool
	}{
		{name: "future date", startsAt: now.AddDate(0, 0, 3), want: true},
		{name: "same day later showing", startsAt: now.Add(5 * time.Hour), want: true},
		{name: "same day earlier showing still sellable", startsAt: now.Add(-3 * time.Hour), want: true},
		{name: "yesterday", startsAt: now.AddDate(0, 0, -1), want: false},
		{name: "last week", startsAt: now.AddDate(0, 0, -7), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSchedule(t, tt.startsAt)
			assert.Equal(t, tt.want, s.Bookable(now))

			err := s.ValidateBookable(now)
			if tt.want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, schedule.ErrPastDate)
			}
		})
	}
}

// Days must be compared as calendar dates, not 24-hour UTC buckets:
// around midnight in non-UTC zones the two disagree.
func TestBookableAcrossTimezones(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	newSchedule := func(t *testing.T, startsAt time.Time) *schedule.Schedule {
		t.Helper()
		s, err := schedule.New(uuid.New(), uuid.New(), hall.HallA, startsAt)
		require.NoError(t, err)
		return s
	}

	t.Run("late showing yesterday is past shortly after local midnight", func(t *testing.T) {
		// Both instants fall on the same UTC day, but locally the
		// screening was yesterday.
		s := newSchedule(t, time.Date(2026, 3, 13, 23, 0, 0, 0, msk))
		now := time.Date(2026, 3, 14, 1, 0, 0, 0, msk)

		assert.False(t, s.Bookable(now))
	})

	t.Run("early showing today is sellable even though UTC lags a day", func(t *testing.T) {
		s := newSchedule(t, time.Date(2026, 3, 14, 0, 30, 0, 0, msk))
		now := time.Date(2026, 3, 14, 10, 0, 0, 0, msk)

		assert.True(t, s.Bookable(now))
	})
}
