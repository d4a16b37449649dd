package occupancy

// Interval is a half-open date range [Start, End). For a reservation, Start
// is check-in and End is check-out; the check-out day itself is not an
// occupied night, so a stay from day N to day N+1 counts exactly 1 night.
type Interval struct {
	Start Date
	End   Date
}

// NewInterval builds an interval from two dates. No ordering is enforced;
// a malformed pair simply yields zero nights everywhere downstream.
func NewInterval(start, end Date) Interval {
	return Interval{Start: start, End: end}
}

// Nights returns the number of occupied nights the interval represents.
// Zero-length or inverted intervals clamp to 0.
func (iv Interval) Nights() int {
	if n := DaysBetween(iv.Start, iv.End); n > 0 {
		return n
	}
	return 0
}

// OverlapDays returns the whole-day overlap between a reservation interval
// and a reporting window, both half-open. Inputs may be malformed (end before
// start); the result clamps to 0 rather than failing, so garbage upstream
// data degrades to an empty contribution in reports.
func OverlapDays(resStart, resEnd, winStart, winEnd Date) int {
	start := maxDate(resStart, winStart)
	end := minDate(resEnd, winEnd)
	if n := DaysBetween(start, end); n > 0 {
		return n
	}
	return 0
}

// OverlapWith returns the nights iv contributes to the given window.
func (iv Interval) OverlapWith(window Interval) int {
	return OverlapDays(iv.Start, iv.End, window.Start, window.End)
}

// Overlaps reports whether two half-open intervals share at least one day.
// Intervals that only touch at a boundary (one's End equals the other's
// Start) do not overlap: a room freed the morning of day N can be rebooked
// starting day N.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Days returns the inclusive day count the window spans, e.g. 31 for a
// calendar-month window [Oct 1, Nov 1). Clamps to 0 when inverted.
func (iv Interval) Days() int {
	if n := DaysBetween(iv.Start, iv.End); n > 0 {
		return n
	}
	return 0
}
