package models

// InventoryItem is a consumable tracked per stay (toilet paper, soap,
// coffee capsules). Quantity is denormalized from movements on write.
type InventoryItem struct {
	Base
	StayID    string  `gorm:"not null;index" json:"stayId"`
	Name      string  `gorm:"not null" json:"name"`
	Unit      string  `json:"unit"`
	Quantity  int     `gorm:"default:0" json:"quantity"`
	MinLevel  int     `gorm:"default:0" json:"minLevel"`
	UnitPrice float64 `json:"unitPrice"`

	Stay *Stay `gorm:"foreignKey:StayID" json:"stay,omitempty"`
}

// LowStock reports whether the item fell to or under its restock threshold.
func (i *InventoryItem) LowStock() bool {
	return i.MinLevel > 0 && i.Quantity <= i.MinLevel
}

// Movement directions.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// InventoryMovement is one stock change, kept as an audit trail.
type InventoryMovement struct {
	Base
	ItemID    string `gorm:"not null;index" json:"itemId"`
	Direction string `gorm:"type:varchar(5);not null" json:"direction"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	Reason    string `json:"reason"`

	Item *InventoryItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}
