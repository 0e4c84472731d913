package usecase

import (
	"fmt"
	"strings"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"

	"github.com/google/uuid"
)

// ConflictingScreenings returns the ids of screenings whose [start, end)
// window overlaps the candidate window. Two half-open intervals overlap
// iff candidate.start < other.end AND candidate.end > other.start, so
// screenings that merely touch endpoints (one ends at 14:00, the next
// starts at 14:00) do not conflict. Under the same formula a
// zero-duration window conflicts only when its instant falls strictly
// inside the other window; at or outside the endpoints it is accepted.
func ConflictingScreenings(start, end time.Time, existing []entity.ScreeningInterval) []uuid.UUID {
	var conflicts []uuid.UUID
	for _, other := range existing {
		if start.Before(other.End()) && end.After(other.StartTime) {
			conflicts = append(conflicts, other.ID)
		}
	}
	return conflicts
}

// overlapCheck adapts ConflictingScreenings into the check the screening
// repository runs inside its hall-locked transaction.
func overlapCheck(start, end time.Time) repository.OverlapCheck {
	return func(existing []entity.ScreeningInterval) error {
		ids := ConflictingScreenings(start, end, existing)
		if len(ids) == 0 {
			return nil
		}

		strs := make([]string, len(ids))
		for i, id := range ids {
			strs[i] = id.String()
		}
		return fmt.Errorf("%w with screening(s) %s",
			repository.ErrSchedulingConflict, strings.Join(strs, ", "))
	}
}
