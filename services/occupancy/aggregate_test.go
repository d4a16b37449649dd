package occupancy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func october() Interval {
	return NewInterval(date(2025, time.October, 1), date(2025, time.November, 1))
}

func TestCompute_SingleReservation(t *testing.T) {
	rooms := []Room{{ID: "r1", StayID: "s1", Name: "101", Active: true}}
	bookings := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 4))},
	}

	report := Compute(rooms, bookings, october())

	assert.Len(t, report.PerRoom, 1)
	assert.Equal(t, 3, report.PerRoom[0].OccupiedNights)
	assert.Equal(t, 31, report.PerRoom[0].CapacityNights)
	assert.Equal(t, 10, report.PerRoom[0].Pct) // round(3/31*100)
	assert.Equal(t, 10, report.OverallPct)
}

func TestCompute_TwoReservationsSameRoom(t *testing.T) {
	rooms := []Room{{ID: "r1", StayID: "s1", Name: "101", Active: true}}
	bookings := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 3))},
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 5), date(2025, time.October, 7))},
	}

	report := Compute(rooms, bookings, october())
	assert.Equal(t, 4, report.PerRoom[0].OccupiedNights)
}

func TestCompute_CancelledExcluded(t *testing.T) {
	rooms := []Room{{ID: "r1", StayID: "s1", Name: "101", Active: true}}
	bookings := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 10)), Cancelled: true},
	}

	report := Compute(rooms, bookings, october())
	assert.Equal(t, 0, report.PerRoom[0].OccupiedNights)
	assert.Equal(t, 0, report.PerRoom[0].Pct)
	assert.Equal(t, 0, report.OverallPct)
}

func TestCompute_InactiveRoomExcluded(t *testing.T) {
	rooms := []Room{
		{ID: "r1", StayID: "s1", Name: "101", Active: true},
		{ID: "r2", StayID: "s1", Name: "102", Active: false},
	}
	bookings := []Booking{
		{RoomID: "r2", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 10))},
	}

	report := Compute(rooms, bookings, october())

	// Inactive room neither appears in results nor inflates the denominator.
	assert.Len(t, report.PerRoom, 1)
	assert.Equal(t, "r1", report.PerRoom[0].RoomID)
	assert.Equal(t, 31, report.CapacityNights)
	assert.Equal(t, 0, report.OccupiedNights)
}

func TestCompute_ZeroRooms(t *testing.T) {
	report := Compute(nil, nil, october())
	assert.Empty(t, report.PerRoom)
	assert.Empty(t, report.PerStay)
	assert.Equal(t, 0, report.OverallPct)
}

func TestCompute_ZeroLengthWindow(t *testing.T) {
	rooms := []Room{{ID: "r1", StayID: "s1", Name: "101", Active: true}}
	window := NewInterval(date(2025, time.October, 1), date(2025, time.October, 1))

	report := Compute(rooms, nil, window)
	assert.Equal(t, 0, report.PerRoom[0].CapacityNights)
	assert.Equal(t, 0, report.PerRoom[0].Pct)
	assert.Equal(t, 0, report.OverallPct)
}

func TestCompute_CapacityBound(t *testing.T) {
	// Overlapping reservations persisted upstream must not push a room past
	// the window capacity, and the portfolio total stays within bounds.
	rooms := []Room{
		{ID: "r1", StayID: "s1", Name: "101", Active: true},
		{ID: "r2", StayID: "s1", Name: "102", Active: true},
	}
	bookings := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.September, 1), date(2025, time.December, 1))},
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 5), date(2025, time.October, 20))},
	}

	report := Compute(rooms, bookings, october())

	total := 0
	for _, r := range report.PerRoom {
		assert.LessOrEqual(t, r.OccupiedNights, 31)
		total += r.OccupiedNights
	}
	assert.LessOrEqual(t, total, 2*31)
	assert.Equal(t, 100, report.PerRoom[0].Pct)
}

func TestCompute_PerStayGrouping(t *testing.T) {
	rooms := []Room{
		{ID: "r1", StayID: "s1", Name: "101", Active: true},
		{ID: "r2", StayID: "s1", Name: "102", Active: true},
		{ID: "r3", StayID: "s2", Name: "201", Active: true},
	}
	bookings := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 16))}, // 15 nights
		{RoomID: "r2", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 11))}, // 10 nights
		{RoomID: "r3", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.November, 1))}, // 31 nights
	}

	report := Compute(rooms, bookings, october())

	assert.Len(t, report.PerStay, 2)
	assert.Equal(t, "s1", report.PerStay[0].StayID)
	assert.Equal(t, 25, report.PerStay[0].OccupiedNights)
	assert.Equal(t, 62, report.PerStay[0].CapacityNights)
	assert.Equal(t, 40, report.PerStay[0].Pct) // round(25/62*100)
	assert.Equal(t, "s2", report.PerStay[1].StayID)
	assert.Equal(t, 100, report.PerStay[1].Pct)
	assert.Equal(t, 60, report.OverallPct) // round(56/93*100)
}

func TestCompute_RoundsOnceNotPerRoom(t *testing.T) {
	// Rooms at 11, 11 and 2 nights over a 31-day window. Averaging the
	// already-rounded per-room percentages (35+35+6)/3 gives 25; the correct
	// single rounding of the raw sums is round(24/93*100) = 26.
	rooms := []Room{
		{ID: "r1", StayID: "s1", Name: "101", Active: true},
		{ID: "r2", StayID: "s1", Name: "102", Active: true},
		{ID: "r3", StayID: "s1", Name: "103", Active: true},
	}
	bookings := []Booking{
		{RoomID: "r1", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 12))},
		{RoomID: "r2", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 12))},
		{RoomID: "r3", Interval: NewInterval(date(2025, time.October, 1), date(2025, time.October, 3))},
	}

	report := Compute(rooms, bookings, october())

	assert.Equal(t, []int{35, 35, 6}, []int{report.PerRoom[0].Pct, report.PerRoom[1].Pct, report.PerRoom[2].Pct})
	avgOfRounded := int(math.Round(float64(report.PerRoom[0].Pct+report.PerRoom[1].Pct+report.PerRoom[2].Pct) / 3))
	assert.Equal(t, 25, avgOfRounded)
	assert.Equal(t, 26, report.OverallPct)
	assert.Equal(t, 26, report.PerStay[0].Pct)
	assert.NotEqual(t, avgOfRounded, report.OverallPct)
}

func TestRankRooms(t *testing.T) {
	perRoom := []RoomOccupancy{
		{RoomID: "a", Pct: 40},
		{RoomID: "b", Pct: 90},
		{RoomID: "c", Pct: 40},
		{RoomID: "d", Pct: 10},
	}

	best := RankRooms(perRoom, true)
	assert.Equal(t, "b", best[0].RoomID)
	// Stable: tied rooms keep input order.
	assert.Equal(t, "a", best[1].RoomID)
	assert.Equal(t, "c", best[2].RoomID)

	worst := RankRooms(perRoom, false)
	assert.Equal(t, "d", worst[0].RoomID)

	// Input untouched.
	assert.Equal(t, "a", perRoom[0].RoomID)
}
