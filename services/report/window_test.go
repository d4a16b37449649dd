package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"
)

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(2025, time.October)
	assert.Equal(t, occupancy.Date{Year: 2025, Month: time.October, Day: 1}, w.Start)
	assert.Equal(t, occupancy.Date{Year: 2025, Month: time.November, Day: 1}, w.End)
	assert.Equal(t, 31, w.Days())

	// February across a leap year.
	assert.Equal(t, 29, MonthWindow(2024, time.February).Days())
	assert.Equal(t, 28, MonthWindow(2025, time.February).Days())

	// December rolls into the next year.
	w = MonthWindow(2025, time.December)
	assert.Equal(t, occupancy.Date{Year: 2026, Month: time.January, Day: 1}, w.End)
}

func TestParseWindow_HalfOpen(t *testing.T) {
	w, err := ParseWindow("2025-10-01", "2025-11-01", false)
	assert.NoError(t, err)
	assert.Equal(t, 31, w.Days())
}

func TestParseWindow_InclusiveEndNormalized(t *testing.T) {
	// A date picker sending Oct 1 .. Oct 31 means the whole of October.
	w, err := ParseWindow("2025-10-01", "2025-10-31", true)
	assert.NoError(t, err)
	assert.Equal(t, occupancy.Date{Year: 2025, Month: time.November, Day: 1}, w.End)
	assert.Equal(t, 31, w.Days())
}

func TestParseWindow_Invalid(t *testing.T) {
	_, err := ParseWindow("2025-11-01", "2025-10-01", false)
	assert.Error(t, err)

	_, err = ParseWindow("not-a-date", "2025-10-01", false)
	assert.Error(t, err)

	// Equal bounds are empty, therefore invalid, unless the end is
	// inclusive (a one-day window).
	_, err = ParseWindow("2025-10-01", "2025-10-01", false)
	assert.Error(t, err)
	w, err := ParseWindow("2025-10-01", "2025-10-01", true)
	assert.NoError(t, err)
	assert.Equal(t, 1, w.Days())
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.October, 17, 15, 4, 5, 0, time.Local)
	w := CurrentMonth(now)
	assert.Equal(t, occupancy.Date{Year: 2025, Month: time.October, Day: 1}, w.Start)
	assert.Equal(t, occupancy.Date{Year: 2025, Month: time.November, Day: 1}, w.End)
}
