package models

// Stay is a building in the portfolio: a named collection of rooms.
// (The name comes from the hospitality side; it is unrelated to the length
// of a guest's stay.)
type Stay struct {
	Base
	Name     string `gorm:"not null;uniqueIndex" json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Notes    string `gorm:"type:text" json:"notes"`
	PhotoURL string `json:"photoUrl"`
	Rooms    []Room `gorm:"foreignKey:StayID" json:"rooms,omitempty"`
}

// Room is one rentable unit inside a stay. Occupancy math treats every room
// as a single unit per day regardless of how many guests it sleeps.
type Room struct {
	Base
	StayID       string  `gorm:"not null;index" json:"stayId"`
	Name         string  `gorm:"not null" json:"name"`
	Floor        int     `json:"floor"`
	Beds         int     `json:"beds"`
	NightlyPrice float64 `json:"nightlyPrice"`
	CleaningFee  float64 `json:"cleaningFee"`
	Active       bool    `gorm:"default:true;index" json:"active"`
	Notes        string  `gorm:"type:text" json:"notes"`
	PhotoURL     string  `json:"photoUrl"`

	Stay *Stay `gorm:"foreignKey:StayID" json:"stay,omitempty"`
}
