package models

// User is a staff member of the admin application.
type User struct {
	Base
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	TokenHash    string `gorm:"index" json:"-"`
}

// Roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)
