package inventoryRepo

import (
	"context"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// InventoryRepository persists consumable items and their stock movements.
type InventoryRepository interface {
	CreateItem(ctx context.Context, i *models.InventoryItem) error
	GetItem(ctx context.Context, id string) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, i *models.InventoryItem) error
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, stayID string) ([]models.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]models.InventoryItem, error)

	// ApplyMovement records the movement and adjusts the item's quantity in
	// one transaction; outbound movements may not take stock negative.
	ApplyMovement(ctx context.Context, m *models.InventoryMovement) (*models.InventoryItem, error)
	ListMovements(ctx context.Context, itemID string) ([]models.InventoryMovement, error)
}
