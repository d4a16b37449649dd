package models

// Guest is a person who has stayed (or will stay) in the portfolio.
type Guest struct {
	Base
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"index" json:"email"`
	Phone     string `json:"phone"`
	Document  string `json:"document"`
	Country   string `json:"country"`
	Notes     string `gorm:"type:text" json:"notes"`
	Blocklist bool   `gorm:"default:false" json:"blocklist"`
}
