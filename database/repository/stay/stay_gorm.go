package stayRepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/database"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

type gormStayRepo struct {
	db *gorm.DB
}

// NewGormStayRepo constructs a StayRepository backed by the shared handle.
func NewGormStayRepo() StayRepository {
	return &gormStayRepo{db: database.GetDB()}
}

func (r *gormStayRepo) CreateStay(ctx context.Context, s *models.Stay) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *gormStayRepo) GetStay(ctx context.Context, id string) (*models.Stay, error) {
	var s models.Stay
	err := r.db.WithContext(ctx).Preload("Rooms").First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *gormStayRepo) UpdateStay(ctx context.Context, s *models.Stay) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *gormStayRepo) DeleteStay(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Stay{}, "id = ?", id).Error
}

func (r *gormStayRepo) ListStays(ctx context.Context) ([]models.Stay, error) {
	var stays []models.Stay
	if err := r.db.WithContext(ctx).Preload("Rooms").Order("name").Find(&stays).Error; err != nil {
		return nil, err
	}
	return stays, nil
}

func (r *gormStayRepo) CreateRoom(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *gormStayRepo) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Preload("Stay").First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *gormStayRepo) UpdateRoom(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *gormStayRepo) DeleteRoom(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Room{}, "id = ?", id).Error
}

func (r *gormStayRepo) ListRooms(ctx context.Context, stayID string, activeOnly bool) ([]models.Room, error) {
	q := r.db.WithContext(ctx).Order("name")
	if stayID != "" {
		q = q.Where("stay_id = ?", stayID)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
