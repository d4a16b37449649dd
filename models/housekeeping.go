package models

import "time"

// Maid is a housekeeping worker paid per completed cleaning.
type Maid struct {
	Base
	Name        string  `gorm:"not null" json:"name"`
	Phone       string  `json:"phone"`
	RatePerClean float64 `json:"ratePerClean"`
	Active      bool    `gorm:"default:true" json:"active"`
	FCMToken    string  `gorm:"column:fcm_token" json:"-"`
}

// Cleaning schedule statuses.
const (
	CleaningPending   = "pending"
	CleaningDone      = "done"
	CleaningSkipped   = "skipped"
)

// CleaningSchedule assigns a maid to clean a room on a given date, normally
// the checkout day of a departing reservation.
type CleaningSchedule struct {
	Base
	MaidID        string    `gorm:"not null;index" json:"maidId"`
	RoomID        string    `gorm:"not null;index" json:"roomId"`
	ReservationID *string   `gorm:"index" json:"reservationId,omitempty"`
	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Amount        float64   `json:"amount"`
	Notes         string    `gorm:"type:text" json:"notes"`

	Maid *Maid `gorm:"foreignKey:MaidID" json:"maid,omitempty"`
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
