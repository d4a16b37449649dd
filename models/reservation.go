package models

import "time"

// Reservation statuses. Cancelled reservations stay on record but are
// excluded from every occupancy figure and from conflict detection.
const (
	ReservationScheduled = "scheduled"
	ReservationActive    = "active"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// ValidReservationStatus reports whether s is one of the known statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationScheduled, ReservationActive, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Reservation is a guest's booking of one room over a half-open date range
// [CheckIn, CheckOut). Dates are stored at day resolution; the checkout day
// itself is not an occupied night.
type Reservation struct {
	Base
	RoomID   string    `gorm:"not null;index" json:"roomId"`
	GuestID  *string   `gorm:"index" json:"guestId,omitempty"`
	CheckIn  time.Time `gorm:"type:date;not null;index" json:"checkIn"`
	CheckOut time.Time `gorm:"type:date;not null;index" json:"checkOut"`
	Status   string    `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Guests   int       `gorm:"default:1" json:"guests"`
	Price    float64   `json:"price"`
	Channel  string    `json:"channel"`
	Notes    string    `gorm:"type:text" json:"notes"`

	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

// Nights returns the reservation's night count, clamped to zero for
// malformed ranges.
func (r *Reservation) Nights() int {
	n := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
