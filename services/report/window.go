package report

import (
	"fmt"
	"time"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"
)

// Reporting windows are half-open [start, end) everywhere in this package.
// Callers sending an inclusive last day (a date-picker's "to" field) must go
// through ParseWindow, which normalizes it with +1 day before the engine
// ever sees it.

// MonthWindow returns the window covering one calendar month.
func MonthWindow(year int, month time.Month) occupancy.Interval {
	start := occupancy.Date{Year: year, Month: month, Day: 1}
	return occupancy.NewInterval(start, nextMonth(start))
}

func nextMonth(d occupancy.Date) occupancy.Date {
	t := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return occupancy.DateOf(t)
}

// CurrentMonth returns the month window containing now.
func CurrentMonth(now time.Time) occupancy.Interval {
	return MonthWindow(now.Year(), now.Month())
}

// ParseWindow builds a window from from/to date strings. When inclusiveEnd
// is set, to names the last day inside the window and is bumped one day to
// restore the half-open invariant.
func ParseWindow(from, to string, inclusiveEnd bool) (occupancy.Interval, error) {
	start, err := occupancy.ParseDate(from)
	if err != nil {
		return occupancy.Interval{}, err
	}
	end, err := occupancy.ParseDate(to)
	if err != nil {
		return occupancy.Interval{}, err
	}
	if inclusiveEnd {
		end = end.AddDays(1)
	}
	if !start.Before(end) {
		return occupancy.Interval{}, fmt.Errorf("window end %s must be after start %s", end, start)
	}
	return occupancy.NewInterval(start, end), nil
}

// windowTimes converts a window to UTC midnight time.Time bounds for SQL.
func windowTimes(w occupancy.Interval) (time.Time, time.Time) {
	from := time.Date(w.Start.Year, w.Start.Month, w.Start.Day, 0, 0, 0, 0, time.UTC)
	to := time.Date(w.End.Year, w.End.Month, w.End.Day, 0, 0, 0, 0, time.UTC)
	return from, to
}
