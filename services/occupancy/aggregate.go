package occupancy

import (
	"math"
	"sort"
)

// Room is the engine's view of a rentable unit. Every room counts as one
// unit per day in capacity terms regardless of guest capacity. Inactive
// rooms are excluded from denominators and from per-room results.
type Room struct {
	ID     string
	StayID string
	Name   string
	Active bool
}

// Booking is the engine's view of a reservation: an interval bound to a
// room. Callers map their persistence models onto this shape once, at the
// boundary; cancelled bookings must be flagged so the engine can drop them
// before any night is counted.
type Booking struct {
	RoomID    string
	Interval  Interval
	Cancelled bool
}

// RoomOccupancy is one room's share of a report window.
type RoomOccupancy struct {
	RoomID         string `json:"roomId"`
	RoomName       string `json:"roomName"`
	StayID         string `json:"stayId"`
	OccupiedNights int    `json:"occupiedNights"`
	CapacityNights int    `json:"capacityNights"`
	Pct            int    `json:"pct"`
}

// StayOccupancy aggregates a property's rooms over a report window.
type StayOccupancy struct {
	StayID         string `json:"stayId"`
	OccupiedNights int    `json:"occupiedNights"`
	CapacityNights int    `json:"capacityNights"`
	Pct            int    `json:"pct"`
}

// Report is the full occupancy breakdown for one window.
type Report struct {
	Window         Interval        `json:"-"`
	PerRoom        []RoomOccupancy `json:"perRoom"`
	PerStay        []StayOccupancy `json:"perStay"`
	OccupiedNights int             `json:"occupiedNights"`
	CapacityNights int             `json:"capacityNights"`
	OverallPct     int             `json:"overallPct"`
}

// Compute aggregates occupancy for the given active rooms and bookings over
// a half-open window. Cancelled bookings and bookings on unknown or inactive
// rooms contribute nothing. Percentages are computed from raw night sums and
// rounded exactly once per figure; per-stay and overall numbers are never
// derived by averaging already-rounded per-room percentages, which drifts.
func Compute(rooms []Room, bookings []Booking, window Interval) Report {
	days := window.Days()

	nightsByRoom := make(map[string]int, len(rooms))
	active := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if !r.Active {
			continue
		}
		active = append(active, r)
		nightsByRoom[r.ID] = 0
	}

	for _, b := range bookings {
		if b.Cancelled {
			continue
		}
		n, ok := nightsByRoom[b.RoomID]
		if !ok {
			continue
		}
		nightsByRoom[b.RoomID] = n + b.Interval.OverlapWith(window)
	}

	report := Report{Window: window, PerRoom: make([]RoomOccupancy, 0, len(active))}
	stayNights := map[string]int{}
	stayCapacity := map[string]int{}
	var stayOrder []string

	for _, r := range active {
		nights := nightsByRoom[r.ID]
		// A room cannot contribute more nights than the window holds,
		// even when overlapping reservations were persisted upstream.
		if nights > days {
			nights = days
		}
		report.PerRoom = append(report.PerRoom, RoomOccupancy{
			RoomID:         r.ID,
			RoomName:       r.Name,
			StayID:         r.StayID,
			OccupiedNights: nights,
			CapacityNights: days,
			Pct:            roundPct(nights, days),
		})
		if _, seen := stayNights[r.StayID]; !seen {
			stayOrder = append(stayOrder, r.StayID)
		}
		stayNights[r.StayID] += nights
		stayCapacity[r.StayID] += days
		report.OccupiedNights += nights
		report.CapacityNights += days
	}

	for _, stayID := range stayOrder {
		report.PerStay = append(report.PerStay, StayOccupancy{
			StayID:         stayID,
			OccupiedNights: stayNights[stayID],
			CapacityNights: stayCapacity[stayID],
			Pct:            roundPct(stayNights[stayID], stayCapacity[stayID]),
		})
	}
	report.OverallPct = roundPct(report.OccupiedNights, report.CapacityNights)
	return report
}

// roundPct rounds occupied/capacity to a whole percentage. Zero capacity
// (no rooms, empty window) yields 0 rather than a division error.
func roundPct(occupied, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(capacity) * 100))
}

// RankRooms returns the per-room results ordered by percentage, best first
// when desc is true. The sort is stable: rooms tied on percentage keep
// their input order.
func RankRooms(perRoom []RoomOccupancy, desc bool) []RoomOccupancy {
	ranked := make([]RoomOccupancy, len(perRoom))
	copy(ranked, perRoom)
	sort.SliceStable(ranked, func(i, j int) bool {
		if desc {
			return ranked[i].Pct > ranked[j].Pct
		}
		return ranked[i].Pct < ranked[j].Pct
	})
	return ranked
}
