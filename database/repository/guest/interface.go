package guestRepo

import (
	"context"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// GuestRepository persists guests.
type GuestRepository interface {
	Create(ctx context.Context, g *models.Guest) error
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	Update(ctx context.Context, g *models.Guest) error
	Delete(ctx context.Context, id string) error
	// List returns guests matching the search term against name, email and
	// document; an empty term returns everyone.
	List(ctx context.Context, search string) ([]models.Guest, error)
}
