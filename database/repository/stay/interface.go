package stayRepo

import (
	"context"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// StayRepository persists stays (properties) and their rooms.
type StayRepository interface {
	CreateStay(ctx context.Context, s *models.Stay) error
	GetStay(ctx context.Context, id string) (*models.Stay, error)
	UpdateStay(ctx context.Context, s *models.Stay) error
	DeleteStay(ctx context.Context, id string) error
	ListStays(ctx context.Context) ([]models.Stay, error)

	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	DeleteRoom(ctx context.Context, id string) error
	// ListRooms returns rooms, optionally scoped to one stay; activeOnly
	// filters out deactivated units.
	ListRooms(ctx context.Context, stayID string, activeOnly bool) ([]models.Room, error)
}
