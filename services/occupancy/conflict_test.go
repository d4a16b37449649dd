package occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasConflict_Overlap(t *testing.T) {
	existing := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 4))},
	}

	candidate := NewInterval(date(2025, time.October, 3), date(2025, time.October, 5))
	assert.True(t, HasConflict("r1", candidate, existing))
}

func TestHasConflict_TouchingBoundary(t *testing.T) {
	existing := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 4))},
	}

	// Checkin on the existing checkout day: the room is free that morning.
	assert.False(t, HasConflict("r1", NewInterval(date(2025, time.October, 4), date(2025, time.October, 6)), existing))
	// Checkout on the existing checkin day.
	assert.False(t, HasConflict("r1", NewInterval(date(2025, time.September, 28), date(2025, time.October, 1)), existing))
}

func TestHasConflict_GapBetweenStays(t *testing.T) {
	existing := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 3))},
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 5), date(2025, time.October, 7))},
	}

	assert.False(t, HasConflict("r1", NewInterval(date(2025, time.October, 3), date(2025, time.October, 5)), existing))
}

func TestHasConflict_CancelledInvisible(t *testing.T) {
	existing := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 10)), Cancelled: true},
	}

	assert.False(t, HasConflict("r1", NewInterval(date(2025, time.October, 2), date(2025, time.October, 6)), existing))
}

func TestHasConflict_OtherRoomIgnored(t *testing.T) {
	existing := []Booking{
		{RoomID: "r2", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 10))},
	}

	assert.False(t, HasConflict("r1", NewInterval(date(2025, time.October, 2), date(2025, time.October, 6)), existing))
}

func TestFindConflict_ReturnsOffender(t *testing.T) {
	existing := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 10), date(2025, time.October, 12))},
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 4))},
	}

	got := FindConflict("r1", NewInterval(date(2025, time.October, 2), date(2025, time.October, 3)), existing)
	assert.NotNil(t, got)
	assert.Equal(t, date(2025, time.October, 1), got.Interval.Start)

	assert.Nil(t, FindConflict("r1", NewInterval(date(2025, time.October, 4), date(2025, time.October, 10)), existing))
}
