package user

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/user"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// Sentinel errors surfaced to handlers as 4xx responses.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenTTL = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleStaff
	}
	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, err
	}

	// Persist the hash and mirror it in the auth cache so middleware can
	// validate sessions without a database hit on every request.
	hash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, u.ID, hash); err != nil {
		return nil, err
	}
	utils.GetAuthCacheClient().Set(ctx, hash, u.ID, tokenTTL)

	u.TokenHash = hash
	return &AuthResult{Token: token, User: *u}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) GetByTokenHash(ctx context.Context, hash string) (*models.User, error) {
	return s.Repo.GetByTokenHash(ctx, hash)
}

func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u != nil && u.TokenHash != "" {
		utils.GetAuthCacheClient().Del(ctx, u.TokenHash)
	}
	return s.Repo.UpdateTokenHash(ctx, id, "")
}

func (s *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.List(ctx)
}
