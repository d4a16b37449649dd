package guest

import (
	"context"
	"errors"

	guestRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/guest"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// ErrNotFound is returned when the referenced guest does not exist.
var ErrNotFound = errors.New("guest not found")

// GuestService manages the guest directory.
type GuestService interface {
	Create(ctx context.Context, g *models.Guest) error
	Get(ctx context.Context, id string) (*models.Guest, error)
	Update(ctx context.Context, g *models.Guest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string) ([]models.Guest, error)
}

// DefaultGuestService implements GuestService.
type DefaultGuestService struct {
	Repo guestRepo.GuestRepository
}

func (s *DefaultGuestService) Create(ctx context.Context, g *models.Guest) error {
	return s.Repo.Create(ctx, g)
}

func (s *DefaultGuestService) Get(ctx context.Context, id string) (*models.Guest, error) {
	g, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

func (s *DefaultGuestService) Update(ctx context.Context, g *models.Guest) error {
	existing, err := s.Repo.GetByID(ctx, g.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.Repo.Update(ctx, g)
}

func (s *DefaultGuestService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultGuestService) List(ctx context.Context, search string) ([]models.Guest, error) {
	return s.Repo.List(ctx, search)
}
