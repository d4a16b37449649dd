package reservation

import (
	"context"
	"errors"

	reservationRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/reservation"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// Sentinel errors surfaced to handlers as 4xx responses.
var (
	ErrNotFound      = errors.New("reservation not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidDates  = errors.New("check-out must be after check-in")
	ErrInvalidStatus = errors.New("unknown reservation status")
	// ErrConflict mirrors the repository sentinel so handlers only depend
	// on this package.
	ErrConflict = reservationRepo.ErrConflict
)

// Input is the canonical write shape for reservations. Dates are
// YYYY-MM-DD strings; handlers bind ad hoc frontend payloads onto this one
// type so the field mapping happens exactly once.
type Input struct {
	RoomID   string  `json:"roomId" binding:"required"`
	GuestID  *string `json:"guestId"`
	CheckIn  string  `json:"checkIn" binding:"required"`
	CheckOut string  `json:"checkOut" binding:"required"`
	Status   string  `json:"status"`
	Guests   int     `json:"guests"`
	Price    float64 `json:"price"`
	Channel  string  `json:"channel"`
	Notes    string  `json:"notes"`
}

// ReservationService manages bookings. Writes are conflict-checked against
// the room's live reservation set; overlapping dates are rejected, never
// silently adjusted.
type ReservationService interface {
	Create(ctx context.Context, in Input) (*models.Reservation, error)
	Update(ctx context.Context, id string, in Input) (*models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, error)
	Cancel(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f reservationRepo.ListFilter) ([]models.Reservation, error)
	// Calendar returns non-cancelled reservations intersecting the
	// half-open window [from, to), for the frontend calendar view.
	Calendar(ctx context.Context, from, to string) ([]models.Reservation, error)
}
