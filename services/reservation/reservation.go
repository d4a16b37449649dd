package reservation

import (
	"context"
	"time"

	"go.uber.org/zap"

	reservationRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/reservation"
	stayRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/stay"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Repo     reservationRepo.ReservationRepository
	StayRepo stayRepo.StayRepository
}

// parseStay validates and converts the input dates. The zero-night case is
// rejected here: the engine tolerates degenerate intervals in reports, but
// persisting one would be an operator mistake.
func parseStay(in Input) (checkIn, checkOut time.Time, err error) {
	ci, err := occupancy.ParseDate(in.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	co, err := occupancy.ParseDate(in.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if occupancy.DaysBetween(ci, co) < 1 {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	toTime := func(d occupancy.Date) time.Time {
		return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	}
	return toTime(ci), toTime(co), nil
}

func (s *DefaultReservationService) apply(in Input, res *models.Reservation) error {
	checkIn, checkOut, err := parseStay(in)
	if err != nil {
		return err
	}

	status := in.Status
	if status == "" {
		status = models.ReservationScheduled
	}
	if !models.ValidReservationStatus(status) {
		return ErrInvalidStatus
	}

	res.RoomID = in.RoomID
	res.GuestID = in.GuestID
	res.CheckIn = checkIn
	res.CheckOut = checkOut
	res.Status = status
	res.Guests = in.Guests
	res.Price = in.Price
	res.Channel = in.Channel
	res.Notes = in.Notes
	return nil
}

func (s *DefaultReservationService) Create(ctx context.Context, in Input) (*models.Reservation, error) {
	room, err := s.StayRepo.GetRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	var res models.Reservation
	if err := s.apply(in, &res); err != nil {
		return nil, err
	}
	if err := s.Repo.CreateWithConflictCheck(ctx, &res); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("reservation created",
		zap.String("id", res.ID),
		zap.String("roomID", res.RoomID),
		zap.String("checkIn", in.CheckIn),
		zap.String("checkOut", in.CheckOut))
	return &res, nil
}

func (s *DefaultReservationService) Update(ctx context.Context, id string, in Input) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}

	// Drop preloaded associations so Save only touches the reservation row.
	res.Room = nil
	res.Guest = nil
	if err := s.apply(in, res); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateWithConflictCheck(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DefaultReservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}
	return res, nil
}

// Cancel soft-excludes the reservation: the record stays, but it vanishes
// from occupancy figures and conflict checks.
func (s *DefaultReservationService) Cancel(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, models.ReservationCancelled)
}

func (s *DefaultReservationService) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidReservationStatus(status) {
		return ErrInvalidStatus
	}
	res, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res == nil {
		return ErrNotFound
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}

func (s *DefaultReservationService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultReservationService) List(ctx context.Context, f reservationRepo.ListFilter) ([]models.Reservation, error) {
	return s.Repo.List(ctx, f)
}

func (s *DefaultReservationService) Calendar(ctx context.Context, from, to string) ([]models.Reservation, error) {
	start, err := occupancy.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := occupancy.ParseDate(to)
	if err != nil {
		return nil, err
	}

	all, err := s.Repo.List(ctx, reservationRepo.ListFilter{
		From: time.Date(start.Year, start.Month, start.Day, 0, 0, 0, 0, time.UTC),
		To:   time.Date(end.Year, end.Month, end.Day, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.Reservation, 0, len(all))
	for _, r := range all {
		if r.Status != models.ReservationCancelled {
			out = append(out, r)
		}
	}
	return out, nil
}
