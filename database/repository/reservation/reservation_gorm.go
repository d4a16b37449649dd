package reservationRepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/database"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"
)

type gormReservationRepo struct {
	db *gorm.DB
}

// NewGormReservationRepo constructs a ReservationRepository backed by the
// shared handle.
func NewGormReservationRepo() ReservationRepository {
	return &gormReservationRepo{db: database.GetDB()}
}

// lockRoomBookings loads and row-locks every non-cancelled reservation of
// the room that could overlap [checkIn, checkOut), serializing concurrent
// writes against the same dates.
func lockRoomBookings(tx *gorm.DB, roomID string, checkIn, checkOut time.Time, excludeID string) ([]models.Reservation, error) {
	q := tx.Model(&models.Reservation{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_id = ? AND status <> ?", roomID, models.ReservationCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var existing []models.Reservation
	if err := q.Find(&existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// conflictFound runs the interval engine over the locked rows. The SQL
// where clause already mirrors the half-open overlap condition; the engine
// re-checks it on calendar dates so day semantics live in one place.
func conflictFound(res *models.Reservation, existing []models.Reservation) bool {
	candidate := occupancy.NewInterval(occupancy.DateOf(res.CheckIn), occupancy.DateOf(res.CheckOut))
	bookings := make([]occupancy.Booking, 0, len(existing))
	for _, e := range existing {
		bookings = append(bookings, occupancy.Booking{
			RoomID:    e.RoomID,
			Interval:  occupancy.NewInterval(occupancy.DateOf(e.CheckIn), occupancy.DateOf(e.CheckOut)),
			Cancelled: e.Status == models.ReservationCancelled,
		})
	}
	return occupancy.HasConflict(res.RoomID, candidate, bookings)
}

func (r *gormReservationRepo) CreateWithConflictCheck(ctx context.Context, res *models.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if res.Status != models.ReservationCancelled {
			existing, err := lockRoomBookings(tx, res.RoomID, res.CheckIn, res.CheckOut, "")
			if err != nil {
				return err
			}
			if conflictFound(res, existing) {
				return ErrConflict
			}
		}
		return tx.Create(res).Error
	})
}

func (r *gormReservationRepo) UpdateWithConflictCheck(ctx context.Context, res *models.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if res.Status != models.ReservationCancelled {
			existing, err := lockRoomBookings(tx, res.RoomID, res.CheckIn, res.CheckOut, res.ID)
			if err != nil {
				return err
			}
			if conflictFound(res, existing) {
				return ErrConflict
			}
		}
		return tx.Save(res).Error
	})
}

func (r *gormReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).Preload("Room").Preload("Guest").First(&res, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *gormReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&models.Reservation{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *gormReservationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Reservation{}, "id = ?", id).Error
}

func (r *gormReservationRepo) List(ctx context.Context, f ListFilter) ([]models.Reservation, error) {
	q := r.db.WithContext(ctx).Preload("Room").Preload("Guest").Order("check_in")
	if f.RoomID != "" {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.StayID != "" {
		q = q.Where("room_id IN (?)",
			r.db.Model(&models.Room{}).Select("id").Where("stay_id = ?", f.StayID))
	}
	if f.GuestID != "" {
		q = q.Where("guest_id = ?", f.GuestID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.From.IsZero() && !f.To.IsZero() {
		q = q.Where("check_in < ? AND check_out > ?", f.To, f.From)
	}
	var out []models.Reservation
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormReservationRepo) ArrivalsOn(ctx context.Context, day time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.db.WithContext(ctx).Preload("Room").Preload("Guest").
		Where("check_in = ? AND status <> ?", day.Format("2006-01-02"), models.ReservationCancelled).
		Find(&out).Error
	return out, err
}

func (r *gormReservationRepo) DeparturesOn(ctx context.Context, day time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.db.WithContext(ctx).Preload("Room").Preload("Guest").
		Where("check_out = ? AND status <> ?", day.Format("2006-01-02"), models.ReservationCancelled).
		Find(&out).Error
	return out, err
}

func (r *gormReservationRepo) RollStatuses(ctx context.Context, today time.Time) error {
	day := today.Format("2006-01-02")
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reservation{}).
			Where("status = ? AND check_in <= ? AND check_out > ?", models.ReservationScheduled, day, day).
			Update("status", models.ReservationActive).Error; err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("status = ? AND check_out <= ?", models.ReservationActive, day).
			Update("status", models.ReservationCompleted).Error
	})
}
