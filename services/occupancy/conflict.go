package occupancy

// HasConflict reports whether the candidate interval overlaps any existing
// booking on the same room. Cancelled bookings are invisible to conflict
// detection; bookings on other rooms are ignored so callers may pass an
// unfiltered set. Touching boundaries (checkout day == checkin day) are not
// conflicts under the half-open semantics.
func HasConflict(roomID string, candidate Interval, existing []Booking) bool {
	return FindConflict(roomID, candidate, existing) != nil
}

// FindConflict returns the first existing booking that overlaps the
// candidate interval on the given room, or nil when the room is free.
func FindConflict(roomID string, candidate Interval, existing []Booking) *Booking {
	for i := range existing {
		b := &existing[i]
		if b.Cancelled || b.RoomID != roomID {
			continue
		}
		if candidate.Overlaps(b.Interval) {
			return b
		}
	}
	return nil
}
