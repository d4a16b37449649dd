package user

import (
	"context"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// RegisterInput carries the fields needed to create a staff account.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// AuthResult is returned on successful authentication.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService manages staff accounts and sessions.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByTokenHash(ctx context.Context, hash string) (*models.User, error)
	RevokeToken(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
}
