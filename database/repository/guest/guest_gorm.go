package guestRepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/database"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

type gormGuestRepo struct {
	db *gorm.DB
}

// NewGormGuestRepo constructs a GuestRepository backed by the shared handle.
func NewGormGuestRepo() GuestRepository {
	return &gormGuestRepo{db: database.GetDB()}
}

func (r *gormGuestRepo) Create(ctx context.Context, g *models.Guest) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gormGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	var g models.Guest
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *gormGuestRepo) Update(ctx context.Context, g *models.Guest) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gormGuestRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Guest{}, "id = ?", id).Error
}

func (r *gormGuestRepo) List(ctx context.Context, search string) ([]models.Guest, error) {
	q := r.db.WithContext(ctx).Order("name")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR document ILIKE ?", like, like, like)
	}
	var guests []models.Guest
	if err := q.Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}
