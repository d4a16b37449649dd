package userRepo

import (
	"context"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// UserRepository persists staff accounts.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTokenHash(ctx context.Context, hash string) (*models.User, error)
	UpdateTokenHash(ctx context.Context, id, hash string) error
	List(ctx context.Context) ([]models.User, error)
}
