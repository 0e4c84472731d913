package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
)

func interval(start time.Time, minutes int) entity.ScreeningInterval {
	return entity.ScreeningInterval{
		ID:              uuid.New(),
		StartTime:       start,
		DurationMinutes: minutes,
	}
}

func TestConflictingScreenings(t *testing.T) {
	base := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	t.Run("no existing screenings", func(t *testing.T) {
		got := ConflictingScreenings(base, base.Add(2*time.Hour), nil)
		assert.Empty(t, got)
	})

	t.Run("overlapping window conflicts", func(t *testing.T) {
		other := interval(base.Add(time.Hour), 120)
		got := ConflictingScreenings(base, base.Add(2*time.Hour), []entity.ScreeningInterval{other})
		require.Len(t, got, 1)
		assert.Equal(t, other.ID, got[0])
	})

	t.Run("contained window conflicts", func(t *testing.T) {
		other := interval(base.Add(-time.Hour), 300)
		got := ConflictingScreenings(base, base.Add(2*time.Hour), []entity.ScreeningInterval{other})
		assert.Len(t, got, 1)
	})

	t.Run("touching endpoints do not conflict", func(t *testing.T) {
		before := interval(base.Add(-2*time.Hour), 120) // ends exactly at base
		after := interval(base.Add(2*time.Hour), 120)   // starts exactly at end
		got := ConflictingScreenings(base, base.Add(2*time.Hour), []entity.ScreeningInterval{before, after})
		assert.Empty(t, got)
	})

	t.Run("zero-duration screening at the window edge does not conflict", func(t *testing.T) {
		other := interval(base, 0)
		got := ConflictingScreenings(base, base.Add(2*time.Hour), []entity.ScreeningInterval{other})
		assert.Empty(t, got)
	})

	t.Run("zero-duration candidate inside a window conflicts", func(t *testing.T) {
		other := interval(base.Add(-time.Hour), 240)
		got := ConflictingScreenings(base, base, []entity.ScreeningInterval{other})
		require.Len(t, got, 1)
		assert.Equal(t, other.ID, got[0])
	})

	t.Run("zero-duration candidate at a window edge does not conflict", func(t *testing.T) {
		other := interval(base, 120)
		got := ConflictingScreenings(base, base, []entity.ScreeningInterval{other})
		assert.Empty(t, got)
	})

	t.Run("reports every conflicting screening", func(t *testing.T) {
		a := interval(base.Add(30*time.Minute), 60)
		b := interval(base.Add(90*time.Minute), 60)
		c := interval(base.Add(5*time.Hour), 60)
		got := ConflictingScreenings(base, base.Add(2*time.Hour), []entity.ScreeningInterval{a, b, c})
		assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, got)
	})
}

func TestOverlapCheck(t *testing.T) {
	base := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	check := overlapCheck(base, base.Add(2*time.Hour))

	t.Run("clear slot passes", func(t *testing.T) {
		err := check([]entity.ScreeningInterval{interval(base.Add(3*time.Hour), 60)})
		assert.NoError(t, err)
	})

	t.Run("conflict surfaces the sentinel and the ids", func(t *testing.T) {
		other := interval(base, 120)
		err := check([]entity.ScreeningInterval{other})
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrSchedulingConflict)
		assert.Contains(t, err.Error(), other.ID.String())
	})
}
