package inventoryRepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/database"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// ErrInsufficientStock is returned when an outbound movement exceeds the
// current quantity.
var ErrInsufficientStock = errors.New("insufficient stock for movement")

type gormInventoryRepo struct {
	db *gorm.DB
}

// NewGormInventoryRepo constructs an InventoryRepository backed by the
// shared handle.
func NewGormInventoryRepo() InventoryRepository {
	return &gormInventoryRepo{db: database.GetDB()}
}

func (r *gormInventoryRepo) CreateItem(ctx context.Context, i *models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *gormInventoryRepo) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	var i models.InventoryItem
	if err := r.db.WithContext(ctx).Preload("Stay").First(&i, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *gormInventoryRepo) UpdateItem(ctx context.Context, i *models.InventoryItem) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *gormInventoryRepo) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id).Error
}

func (r *gormInventoryRepo) ListItems(ctx context.Context, stayID string) ([]models.InventoryItem, error) {
	q := r.db.WithContext(ctx).Order("name")
	if stayID != "" {
		q = q.Where("stay_id = ?", stayID)
	}
	var items []models.InventoryItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormInventoryRepo) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Where("min_level > 0 AND quantity <= min_level").
		Order("name").Find(&items).Error
	return items, err
}

func (r *gormInventoryRepo) ApplyMovement(ctx context.Context, m *models.InventoryMovement) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", m.ItemID).Error; err != nil {
			return err
		}

		switch m.Direction {
		case models.MovementIn:
			item.Quantity += m.Quantity
		case models.MovementOut:
			if item.Quantity < m.Quantity {
				return ErrInsufficientStock
			}
			item.Quantity -= m.Quantity
		default:
			return fmt.Errorf("unknown movement direction %q", m.Direction)
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&item).Update("quantity", item.Quantity).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormInventoryRepo) ListMovements(ctx context.Context, itemID string) ([]models.InventoryMovement, error) {
	var out []models.InventoryMovement
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at desc").Find(&out).Error
	return out, err
}
