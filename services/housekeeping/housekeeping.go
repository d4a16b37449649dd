package housekeeping

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	housekeepingRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/housekeeping"
	reservationRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/reservation"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/notification"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// Sentinel errors surfaced to handlers as 4xx responses.
var (
	ErrMaidNotFound     = errors.New("maid not found")
	ErrScheduleNotFound = errors.New("cleaning schedule not found")
)

// ScheduleInput is the canonical write shape for cleaning schedules.
type ScheduleInput struct {
	MaidID        string  `json:"maidId" binding:"required"`
	RoomID        string  `json:"roomId" binding:"required"`
	ReservationID *string `json:"reservationId"`
	Date          string  `json:"date" binding:"required"`
	Notes         string  `json:"notes"`
}

// HousekeepingService manages maids and cleaning schedules.
type HousekeepingService interface {
	CreateMaid(ctx context.Context, m *models.Maid) error
	GetMaid(ctx context.Context, id string) (*models.Maid, error)
	UpdateMaid(ctx context.Context, m *models.Maid) error
	ListMaids(ctx context.Context, activeOnly bool) ([]models.Maid, error)

	Schedule(ctx context.Context, in ScheduleInput) (*models.CleaningSchedule, error)
	CompleteSchedule(ctx context.Context, id string) (*models.CleaningSchedule, error)
	DeleteSchedule(ctx context.Context, id string) error
	ListSchedules(ctx context.Context, maidID string, from, to time.Time) ([]models.CleaningSchedule, error)

	// GenerateFromDepartures creates a pending cleaning for every room with
	// a checkout on the given day that has no schedule yet. Maid assignment
	// round-robins over the active roster.
	GenerateFromDepartures(ctx context.Context, day time.Time) (int, error)
}

// DefaultHousekeepingService implements HousekeepingService.
type DefaultHousekeepingService struct {
	Repo         housekeepingRepo.HousekeepingRepository
	Reservations reservationRepo.ReservationRepository
	Notifier     notification.NotificationService
}

func (s *DefaultHousekeepingService) CreateMaid(ctx context.Context, m *models.Maid) error {
	return s.Repo.CreateMaid(ctx, m)
}

func (s *DefaultHousekeepingService) GetMaid(ctx context.Context, id string) (*models.Maid, error) {
	m, err := s.Repo.GetMaid(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMaidNotFound
	}
	return m, nil
}

func (s *DefaultHousekeepingService) UpdateMaid(ctx context.Context, m *models.Maid) error {
	existing, err := s.Repo.GetMaid(ctx, m.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrMaidNotFound
	}
	return s.Repo.UpdateMaid(ctx, m)
}

func (s *DefaultHousekeepingService) ListMaids(ctx context.Context, activeOnly bool) ([]models.Maid, error) {
	return s.Repo.ListMaids(ctx, activeOnly)
}

func (s *DefaultHousekeepingService) Schedule(ctx context.Context, in ScheduleInput) (*models.CleaningSchedule, error) {
	maid, err := s.GetMaid(ctx, in.MaidID)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", in.Date, err)
	}

	sched := &models.CleaningSchedule{
		MaidID:        in.MaidID,
		RoomID:        in.RoomID,
		ReservationID: in.ReservationID,
		Date:          day,
		Status:        models.CleaningPending,
		Amount:        maid.RatePerClean,
		Notes:         in.Notes,
	}
	if err := s.Repo.CreateSchedule(ctx, sched); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendMaidPush(ctx, maid.ID,
			"New cleaning assigned",
			fmt.Sprintf("Cleaning scheduled for %s", in.Date),
			map[string]string{"scheduleId": sched.ID}); err != nil {
			utils.GetLogger().Warn("failed to notify maid", zap.String("maidID", maid.ID), zap.Error(err))
		}
	}
	return sched, nil
}

func (s *DefaultHousekeepingService) CompleteSchedule(ctx context.Context, id string) (*models.CleaningSchedule, error) {
	sched, err := s.Repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, ErrScheduleNotFound
	}

	sched.Status = models.CleaningDone
	// Freeze the payout at completion time in case the maid's rate changes
	// before payroll runs.
	if sched.Amount == 0 && sched.Maid != nil {
		sched.Amount = sched.Maid.RatePerClean
	}
	sched.Maid = nil
	sched.Room = nil
	if err := s.Repo.UpdateSchedule(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *DefaultHousekeepingService) DeleteSchedule(ctx context.Context, id string) error {
	return s.Repo.DeleteSchedule(ctx, id)
}

func (s *DefaultHousekeepingService) ListSchedules(ctx context.Context, maidID string, from, to time.Time) ([]models.CleaningSchedule, error) {
	return s.Repo.ListSchedules(ctx, maidID, from, to)
}

func (s *DefaultHousekeepingService) GenerateFromDepartures(ctx context.Context, day time.Time) (int, error) {
	logger := utils.GetLogger()

	departures, err := s.Reservations.DeparturesOn(ctx, day)
	if err != nil {
		return 0, err
	}
	if len(departures) == 0 {
		return 0, nil
	}

	maids, err := s.Repo.ListMaids(ctx, true)
	if err != nil {
		return 0, err
	}
	if len(maids) == 0 {
		logger.Warn("no active maids, skipping cleaning generation",
			zap.String("day", day.Format("2006-01-02")))
		return 0, nil
	}

	scheduled, err := s.Repo.ListSchedules(ctx, "", day, day.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	covered := make(map[string]bool, len(scheduled))
	for _, sc := range scheduled {
		covered[sc.RoomID] = true
	}

	created := 0
	for _, dep := range departures {
		if covered[dep.RoomID] {
			continue
		}
		maid := maids[created%len(maids)]
		resID := dep.ID
		if _, err := s.Schedule(ctx, ScheduleInput{
			MaidID:        maid.ID,
			RoomID:        dep.RoomID,
			ReservationID: &resID,
			Date:          day.Format("2006-01-02"),
		}); err != nil {
			return created, err
		}
		covered[dep.RoomID] = true
		created++
	}

	if created > 0 {
		logger.Info("cleanings generated from departures",
			zap.Int("count", created),
			zap.String("day", day.Format("2006-01-02")))
	}
	return created, nil
}
