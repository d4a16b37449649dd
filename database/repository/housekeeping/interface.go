package housekeepingRepo

import (
	"context"
	"time"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// PayrollRow is one maid's aggregate over a period, straight from SQL.
type PayrollRow struct {
	MaidID    string
	MaidName  string
	Cleanings int
	Amount    float64
}

// HousekeepingRepository persists maids and cleaning schedules.
type HousekeepingRepository interface {
	CreateMaid(ctx context.Context, m *models.Maid) error
	GetMaid(ctx context.Context, id string) (*models.Maid, error)
	UpdateMaid(ctx context.Context, m *models.Maid) error
	ListMaids(ctx context.Context, activeOnly bool) ([]models.Maid, error)

	CreateSchedule(ctx context.Context, s *models.CleaningSchedule) error
	GetSchedule(ctx context.Context, id string) (*models.CleaningSchedule, error)
	UpdateSchedule(ctx context.Context, s *models.CleaningSchedule) error
	DeleteSchedule(ctx context.Context, id string) error
	// ListSchedules returns schedules dated within [from, to), optionally
	// narrowed to one maid.
	ListSchedules(ctx context.Context, maidID string, from, to time.Time) ([]models.CleaningSchedule, error)
	CountPending(ctx context.Context, day time.Time) (int64, error)
	// Payroll sums completed cleanings per maid over [from, to).
	Payroll(ctx context.Context, from, to time.Time) ([]PayrollRow, error)
}
