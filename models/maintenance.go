package models

import "time"

// Maintenance task statuses.
const (
	MaintenanceOpen      = "open"
	MaintenanceDone      = "done"
	MaintenanceCancelled = "cancelled"
)

// MaintenanceTask is a repair or upkeep ticket against a room or a whole
// stay. A task with a recurrence rule (RFC 5545 RRULE, e.g.
// "FREQ=MONTHLY;BYMONTHDAY=1") acts as a template: the worker materializes
// one MaintenanceOccurrence per upcoming due date.
type MaintenanceTask struct {
	Base
	StayID      string     `gorm:"not null;index" json:"stayId"`
	RoomID      *string    `gorm:"index" json:"roomId,omitempty"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    int        `gorm:"default:0" json:"priority"`
	Cost        float64    `json:"cost"`
	DueDate     *time.Time `gorm:"type:date" json:"dueDate,omitempty"`
	RRule       string     `gorm:"column:rrule" json:"rrule,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`

	Stay        *Stay                   `gorm:"foreignKey:StayID" json:"stay,omitempty"`
	Room        *Room                   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Occurrences []MaintenanceOccurrence `gorm:"foreignKey:TaskID" json:"occurrences,omitempty"`
}

// Recurring reports whether the task expands into occurrences.
func (t *MaintenanceTask) Recurring() bool {
	return t.RRule != ""
}

// MaintenanceOccurrence is one concrete due date of a recurring task.
type MaintenanceOccurrence struct {
	Base
	TaskID      string     `gorm:"not null;index" json:"taskId"`
	DueDate     time.Time  `gorm:"type:date;not null;index" json:"dueDate"`
	Status      string     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes"`

	Task *MaintenanceTask `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
