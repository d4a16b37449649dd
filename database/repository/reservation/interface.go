package reservationRepo

import (
	"context"
	"errors"
	"time"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// ErrConflict is returned when a write would double-book a room.
var ErrConflict = errors.New("reservation dates conflict with an existing booking")

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	RoomID  string
	StayID  string
	GuestID string
	Status  string
	// From/To select reservations intersecting the half-open window
	// [From, To) when both are set.
	From time.Time
	To   time.Time
}

// ReservationRepository persists reservations. The conflict-checked writes
// run inside a transaction that locks the room's candidate rows, so two
// concurrent bookings of the same dates cannot both pass the check.
type ReservationRepository interface {
	CreateWithConflictCheck(ctx context.Context, res *models.Reservation) error
	UpdateWithConflictCheck(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]models.Reservation, error)
	ArrivalsOn(ctx context.Context, day time.Time) ([]models.Reservation, error)
	DeparturesOn(ctx context.Context, day time.Time) ([]models.Reservation, error)
	// RollStatuses advances scheduled reservations to active once their
	// check-in day arrives and active ones to completed after checkout.
	RollStatuses(ctx context.Context, today time.Time) error
}
