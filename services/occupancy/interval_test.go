package occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-10-01")
	assert.NoError(t, err)
	assert.Equal(t, date(2025, time.October, 1), d)

	_, err = ParseDate("01/10/2025")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(date(2025, time.October, 1), date(2025, time.October, 2)))
	assert.Equal(t, 31, DaysBetween(date(2025, time.October, 1), date(2025, time.November, 1)))
	assert.Equal(t, -3, DaysBetween(date(2025, time.October, 4), date(2025, time.October, 1)))
	assert.Equal(t, 0, DaysBetween(date(2025, time.October, 1), date(2025, time.October, 1)))
	// Across a year boundary.
	assert.Equal(t, 62, DaysBetween(date(2025, time.December, 1), date(2026, time.February, 1)))
}

func TestDateAddDays(t *testing.T) {
	assert.Equal(t, date(2025, time.November, 1), date(2025, time.October, 31).AddDays(1))
	assert.Equal(t, date(2024, time.February, 29), date(2024, time.March, 1).AddDays(-1))
}

func TestIntervalNights(t *testing.T) {
	// One-night stay: day N to day N+1.
	assert.Equal(t, 1, NewInterval(date(2025, time.October, 1), date(2025, time.October, 2)).Nights())
	// Degenerate and inverted intervals clamp to zero.
	assert.Equal(t, 0, NewInterval(date(2025, time.October, 1), date(2025, time.October, 1)).Nights())
	assert.Equal(t, 0, NewInterval(date(2025, time.October, 5), date(2025, time.October, 1)).Nights())
}

func TestOverlapDays_InsideWindow(t *testing.T) {
	// Reservation fully inside the window contributes its full night count.
	n := OverlapDays(
		date(2025, time.October, 1), date(2025, time.October, 4),
		date(2025, time.October, 1), date(2025, time.November, 1),
	)
	assert.Equal(t, 3, n)
}

func TestOverlapDays_SpansWindow(t *testing.T) {
	// Reservation covering the whole window contributes the window length.
	n := OverlapDays(
		date(2025, time.September, 15), date(2025, time.November, 10),
		date(2025, time.October, 1), date(2025, time.November, 1),
	)
	assert.Equal(t, 31, n)
}

func TestOverlapDays_OutsideWindow(t *testing.T) {
	n := OverlapDays(
		date(2025, time.August, 1), date(2025, time.August, 5),
		date(2025, time.October, 1), date(2025, time.November, 1),
	)
	assert.Equal(t, 0, n)
}

func TestOverlapDays_BoundaryHandoff(t *testing.T) {
	// Checkout on the day a new window starts must not leak a night into it.
	n := OverlapDays(
		date(2025, time.September, 28), date(2025, time.October, 1),
		date(2025, time.October, 1), date(2025, time.November, 1),
	)
	assert.Equal(t, 0, n)

	// Checkin on the day the window ends contributes nothing either.
	n = OverlapDays(
		date(2025, time.November, 1), date(2025, time.November, 3),
		date(2025, time.October, 1), date(2025, time.November, 1),
	)
	assert.Equal(t, 0, n)
}

func TestOverlapDays_NeverNegative(t *testing.T) {
	cases := []struct {
		name                   string
		rs, re, ws, we         Date
	}{
		{"inverted reservation", date(2025, time.October, 9), date(2025, time.October, 2), date(2025, time.October, 1), date(2025, time.November, 1)},
		{"inverted window", date(2025, time.October, 2), date(2025, time.October, 9), date(2025, time.November, 1), date(2025, time.October, 1)},
		{"both inverted", date(2025, time.October, 9), date(2025, time.October, 2), date(2025, time.November, 1), date(2025, time.October, 1)},
		{"disjoint before", date(2025, time.January, 1), date(2025, time.January, 5), date(2025, time.October, 1), date(2025, time.November, 1)},
		{"disjoint after", date(2026, time.January, 1), date(2026, time.January, 5), date(2025, time.October, 1), date(2025, time.November, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.GreaterOrEqual(t, OverlapDays(tc.rs, tc.re, tc.ws, tc.we), 0)
		})
	}
}

func TestOverlapDays_FullContainment(t *testing.T) {
	// When the window contains the reservation, overlap equals the stay length.
	rs, re := date(2025, time.October, 10), date(2025, time.October, 17)
	n := OverlapDays(rs, re, date(2025, time.October, 1), date(2025, time.November, 1))
	assert.Equal(t, DaysBetween(rs, re), n)
}

func TestIntervalOverlaps(t *testing.T) {
	existing := NewInterval(date(2025, time.October, 1), date(2025, time.October, 4))

	// Overlap on Oct 3.
	assert.True(t, existing.Overlaps(NewInterval(date(2025, time.October, 3), date(2025, time.October, 5))))
	// Touching at checkout/checkin boundary is not an overlap.
	assert.False(t, existing.Overlaps(NewInterval(date(2025, time.October, 4), date(2025, time.October, 6))))
	assert.False(t, NewInterval(date(2025, time.September, 28), date(2025, time.October, 1)).Overlaps(existing))
	// Containment.
	assert.True(t, existing.Overlaps(NewInterval(date(2025, time.September, 1), date(2025, time.November, 1))))
}
