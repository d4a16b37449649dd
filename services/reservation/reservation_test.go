package reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	reservationRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/reservation"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/occupancy"
)

// fakeReservationRepo keeps reservations in memory and mirrors the real
// repository's conflict check over the stored set.
type fakeReservationRepo struct {
	reservations map[string]*models.Reservation
	nextID       int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: map[string]*models.Reservation{}}
}

func (f *fakeReservationRepo) hasConflict(res *models.Reservation) bool {
	cand := occupancy.NewInterval(occupancy.DateOf(res.CheckIn), occupancy.DateOf(res.CheckOut))
	for _, existing := range f.reservations {
		if existing.ID == res.ID || existing.RoomID != res.RoomID {
			continue
		}
		if existing.Status == models.ReservationCancelled {
			continue
		}
		iv := occupancy.NewInterval(occupancy.DateOf(existing.CheckIn), occupancy.DateOf(existing.CheckOut))
		if iv.Overlaps(cand) {
			return true
		}
	}
	return false
}

func (f *fakeReservationRepo) CreateWithConflictCheck(ctx context.Context, res *models.Reservation) error {
	if f.hasConflict(res) {
		return reservationRepo.ErrConflict
	}
	f.nextID++
	res.ID = fmt.Sprintf("res-%d", f.nextID)
	cp := *res
	f.reservations[res.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) UpdateWithConflictCheck(ctx context.Context, res *models.Reservation) error {
	if f.hasConflict(res) {
		return reservationRepo.ErrConflict
	}
	cp := *res
	f.reservations[res.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, nil
	}
	cp := *res
	return &cp, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if res, ok := f.reservations[id]; ok {
		res.Status = status
	}
	return nil
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id string) error {
	delete(f.reservations, id)
	return nil
}

func (f *fakeReservationRepo) List(ctx context.Context, filter reservationRepo.ListFilter) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range f.reservations {
		if !filter.From.IsZero() && !filter.To.IsZero() {
			if !res.CheckIn.Before(filter.To) || !res.CheckOut.After(filter.From) {
				continue
			}
		}
		out = append(out, *res)
	}
	return out, nil
}

func (f *fakeReservationRepo) ArrivalsOn(ctx context.Context, day time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) DeparturesOn(ctx context.Context, day time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) RollStatuses(ctx context.Context, today time.Time) error {
	return nil
}

// fakeStayRepo serves a fixed set of rooms.
type fakeStayRepo struct {
	rooms map[string]*models.Room
}

func (f *fakeStayRepo) CreateStay(ctx context.Context, s *models.Stay) error  { return nil }
func (f *fakeStayRepo) GetStay(ctx context.Context, id string) (*models.Stay, error) {
	return nil, nil
}
func (f *fakeStayRepo) UpdateStay(ctx context.Context, s *models.Stay) error { return nil }
func (f *fakeStayRepo) DeleteStay(ctx context.Context, id string) error      { return nil }
func (f *fakeStayRepo) ListStays(ctx context.Context) ([]models.Stay, error) { return nil, nil }
func (f *fakeStayRepo) CreateRoom(ctx context.Context, room *models.Room) error {
	return nil
}
func (f *fakeStayRepo) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return f.rooms[id], nil
}
func (f *fakeStayRepo) UpdateRoom(ctx context.Context, room *models.Room) error { return nil }
func (f *fakeStayRepo) DeleteRoom(ctx context.Context, id string) error         { return nil }
func (f *fakeStayRepo) ListRooms(ctx context.Context, stayID string, activeOnly bool) ([]models.Room, error) {
	return nil, nil
}

func newService() (*DefaultReservationService, *fakeReservationRepo) {
	repo := newFakeReservationRepo()
	stays := &fakeStayRepo{rooms: map[string]*models.Room{
		"room-1": {Base: models.Base{ID: "room-1"}, StayID: "stay-1", Name: "101", Active: true},
	}}
	return &DefaultReservationService{Repo: repo, StayRepo: stays}, repo
}

func TestCreate_RejectsUnknownRoom(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), Input{
		RoomID:   "room-404",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-03",
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreate_RejectsZeroNightStay(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDates)

	_, err = svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-03",
		CheckOut: "2024-05-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-03",
		Status:   "tentative",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreate_DefaultsToScheduled(t *testing.T) {
	svc, _ := newService()

	res, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-03",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationScheduled, res.Status)
	assert.Equal(t, 2, res.Nights())
}

func TestCreate_RejectsOverlap(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-05",
	})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-04",
		CheckOut: "2024-05-08",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreate_AllowsBackToBackStays(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-05",
	})
	assert.NoError(t, err)

	// Checkout and check-in on the same day is a clean handoff.
	_, err = svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-05",
		CheckOut: "2024-05-08",
	})
	assert.NoError(t, err)
}

func TestCreate_IgnoresCancelledWhenChecking(t *testing.T) {
	svc, repo := newService()

	res, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-05",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Cancel(context.Background(), res.ID))
	assert.Equal(t, models.ReservationCancelled, repo.reservations[res.ID].Status)

	// The cancelled booking no longer blocks the room.
	_, err = svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-02",
		CheckOut: "2024-05-04",
	})
	assert.NoError(t, err)
}

func TestUpdate_CanShrinkWithinOwnDates(t *testing.T) {
	svc, _ := newService()

	res, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-10",
	})
	assert.NoError(t, err)

	// Moving a reservation inside its own original range must not conflict
	// with itself.
	updated, err := svc.Update(context.Background(), res.ID, Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-02",
		CheckOut: "2024-05-08",
	})
	assert.NoError(t, err)
	assert.Equal(t, 6, updated.Nights())
}

func TestCalendar_ExcludesCancelled(t *testing.T) {
	svc, _ := newService()

	keep, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-05",
	})
	assert.NoError(t, err)

	gone, err := svc.Create(context.Background(), Input{
		RoomID:   "room-1",
		CheckIn:  "2024-05-10",
		CheckOut: "2024-05-12",
	})
	assert.NoError(t, err)
	assert.NoError(t, svc.Cancel(context.Background(), gone.ID))

	out, err := svc.Calendar(context.Background(), "2024-05-01", "2024-06-01")
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, keep.ID, out[0].ID)
}
