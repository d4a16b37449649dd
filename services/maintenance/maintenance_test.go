package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDates_Monthly(t *testing.T) {
	dates, err := DueDates("FREQ=MONTHLY;BYMONTHDAY=1", day(2025, time.January, 1),
		day(2025, time.October, 1), day(2026, time.January, 1))

	assert.NoError(t, err)
	assert.Equal(t, []time.Time{
		day(2025, time.October, 1),
		day(2025, time.November, 1),
		day(2025, time.December, 1),
	}, dates)
}

func TestDueDates_WindowEndExclusive(t *testing.T) {
	// A due date landing exactly on the window end belongs to the next
	// period, not this one.
	dates, err := DueDates("FREQ=MONTHLY;BYMONTHDAY=1", day(2025, time.January, 1),
		day(2025, time.October, 1), day(2025, time.November, 1))

	assert.NoError(t, err)
	assert.Equal(t, []time.Time{day(2025, time.October, 1)}, dates)
}

func TestDueDates_Weekly(t *testing.T) {
	dates, err := DueDates("FREQ=WEEKLY;BYDAY=MO", day(2025, time.September, 29),
		day(2025, time.October, 1), day(2025, time.October, 15))

	assert.NoError(t, err)
	assert.Equal(t, []time.Time{
		day(2025, time.October, 6),
		day(2025, time.October, 13),
	}, dates)
}

func TestDueDates_InvalidRule(t *testing.T) {
	_, err := DueDates("FREQ=SOMETIMES", day(2025, time.January, 1),
		day(2025, time.October, 1), day(2025, time.November, 1))

	assert.ErrorIs(t, err, ErrInvalidRRule)
}

func TestDueDates_AnchorAfterWindow(t *testing.T) {
	dates, err := DueDates("FREQ=MONTHLY;BYMONTHDAY=1", day(2026, time.June, 1),
		day(2025, time.October, 1), day(2025, time.November, 1))

	assert.NoError(t, err)
	assert.Empty(t, dates)
}
