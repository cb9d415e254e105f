package common

import (
	"math/rand"
	"testing"
	"time"

	"hallbook/src/types"

	"github.com/stretchr/testify/assert"
)

func mkRange(t *testing.T, day, start, end string) types.DateRange {
	t.Helper()
	s, err := time.Parse(time.RFC3339, day+"T"+start+":00Z")
	assert.Nil(t, err)
	e, err := time.Parse(time.RFC3339, day+"T"+end+":00Z")
	assert.Nil(t, err)
	return types.DateRange{StartTime: s, EndTime: e}
}

func TestRangesConflictWithBuffer(t *testing.T) {
	stored := mkRange(t, "2026-10-01", "14:00", "16:00")

	// A 2h buffer around 14:00-16:00 blocks 12:00-18:00.
	assert.True(t, RangesConflict(mkRange(t, "2026-10-01", "16:30", "18:00"), stored, 2))
	assert.True(t, RangesConflict(mkRange(t, "2026-10-01", "11:00", "12:30"), stored, 2))
	assert.True(t, RangesConflict(mkRange(t, "2026-10-01", "14:30", "15:30"), stored, 2))

	// Touching the edge of the padded window is fine.
	assert.False(t, RangesConflict(mkRange(t, "2026-10-01", "18:00", "20:00"), stored, 2))
	assert.False(t, RangesConflict(mkRange(t, "2026-10-01", "10:00", "12:00"), stored, 2))
}

func TestRangesConflictNoBuffer(t *testing.T) {
	stored := mkRange(t, "2026-10-01", "14:00", "16:00")

	assert.True(t, RangesConflict(mkRange(t, "2026-10-01", "15:00", "17:00"), stored, 0))
	// Back to back slots do not collide.
	assert.False(t, RangesConflict(mkRange(t, "2026-10-01", "16:00", "18:00"), stored, 0))
	assert.False(t, RangesConflict(mkRange(t, "2026-10-01", "12:00", "14:00"), stored, 0))
}

// Random range pairs checked against an independent formulation of the
// padded overlap: the requested range collides iff the latest start falls
// strictly before the earliest end of [request, stored±buffer].
func TestRangesConflictRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	minutes := func(n int) time.Duration { return time.Duration(n) * time.Minute }

	for i := 0; i < 1000; i++ {
		requested := types.DateRange{StartTime: base.Add(minutes(rng.Intn(7 * 24 * 60)))}
		requested.EndTime = requested.StartTime.Add(minutes(30 + rng.Intn(48*60)))
		stored := types.DateRange{StartTime: base.Add(minutes(rng.Intn(7 * 24 * 60)))}
		stored.EndTime = stored.StartTime.Add(minutes(30 + rng.Intn(48*60)))
		buffer := uint(rng.Intn(5))

		blockStart := stored.StartTime.Add(-time.Duration(buffer) * time.Hour)
		blockEnd := stored.EndTime.Add(time.Duration(buffer) * time.Hour)
		latestStart := requested.StartTime
		if blockStart.After(latestStart) {
			latestStart = blockStart
		}
		earliestEnd := requested.EndTime
		if blockEnd.Before(earliestEnd) {
			earliestEnd = blockEnd
		}
		want := earliestEnd.After(latestStart)

		assert.Equal(t, want, RangesConflict(requested, stored, buffer),
			"requested %v stored %v buffer %dh", requested, stored, buffer)
		// Without a buffer the relation is symmetric.
		assert.Equal(t, RangesConflict(requested, stored, 0), RangesConflict(stored, requested, 0))
	}
}

func TestValidateDateRanges(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	err := ValidateDateRanges(nil, now)
	assert.NotNil(t, err)

	err = ValidateDateRanges([]types.DateRange{
		mkRange(t, "2026-10-01", "14:00", "16:00"),
		mkRange(t, "2026-10-02", "16:00", "14:00"),
	}, now)
	var rangeErr *RangeValidationError
	assert.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 1, rangeErr.Index)

	err = ValidateDateRanges([]types.DateRange{
		mkRange(t, "2026-08-01", "14:00", "16:00"),
	}, now)
	assert.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 0, rangeErr.Index)

	err = ValidateDateRanges([]types.DateRange{
		mkRange(t, "2026-10-01", "14:00", "16:00"),
	}, now)
	assert.Nil(t, err)
}
