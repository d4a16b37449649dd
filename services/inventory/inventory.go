package inventory

import (
	"context"
	"errors"

	inventoryRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/inventory"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// Sentinel errors surfaced to handlers as 4xx responses.
var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInvalidMovement   = errors.New("movement quantity must be positive")
	ErrInsufficientStock = inventoryRepo.ErrInsufficientStock
)

// MovementInput is the canonical write shape for stock movements.
type MovementInput struct {
	ItemID    string `json:"itemId" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=in out"`
	Quantity  int    `json:"quantity" binding:"required"`
	Reason    string `json:"reason"`
}

// InventoryService manages consumable stock per stay.
type InventoryService interface {
	CreateItem(ctx context.Context, i *models.InventoryItem) error
	GetItem(ctx context.Context, id string) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, i *models.InventoryItem) error
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, stayID string) ([]models.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]models.InventoryItem, error)

	Move(ctx context.Context, in MovementInput) (*models.InventoryItem, error)
	ListMovements(ctx context.Context, itemID string) ([]models.InventoryMovement, error)
}

// DefaultInventoryService implements InventoryService.
type DefaultInventoryService struct {
	Repo inventoryRepo.InventoryRepository
}

func (s *DefaultInventoryService) CreateItem(ctx context.Context, i *models.InventoryItem) error {
	return s.Repo.CreateItem(ctx, i)
}

func (s *DefaultInventoryService) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	i, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, ErrItemNotFound
	}
	return i, nil
}

func (s *DefaultInventoryService) UpdateItem(ctx context.Context, i *models.InventoryItem) error {
	existing, err := s.Repo.GetItem(ctx, i.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrItemNotFound
	}
	return s.Repo.UpdateItem(ctx, i)
}

func (s *DefaultInventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.Repo.DeleteItem(ctx, id)
}

func (s *DefaultInventoryService) ListItems(ctx context.Context, stayID string) ([]models.InventoryItem, error) {
	return s.Repo.ListItems(ctx, stayID)
}

func (s *DefaultInventoryService) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	return s.Repo.ListLowStock(ctx)
}

func (s *DefaultInventoryService) Move(ctx context.Context, in MovementInput) (*models.InventoryItem, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidMovement
	}
	if _, err := s.GetItem(ctx, in.ItemID); err != nil {
		return nil, err
	}
	return s.Repo.ApplyMovement(ctx, &models.InventoryMovement{
		ItemID:    in.ItemID,
		Direction: in.Direction,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
}

func (s *DefaultInventoryService) ListMovements(ctx context.Context, itemID string) ([]models.InventoryMovement, error) {
	return s.Repo.ListMovements(ctx, itemID)
}
