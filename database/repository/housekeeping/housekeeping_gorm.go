package housekeepingRepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/database"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

type gormHousekeepingRepo struct {
	db *gorm.DB
}

// NewGormHousekeepingRepo constructs a HousekeepingRepository backed by the
// shared handle.
func NewGormHousekeepingRepo() HousekeepingRepository {
	return &gormHousekeepingRepo{db: database.GetDB()}
}

func (r *gormHousekeepingRepo) CreateMaid(ctx context.Context, m *models.Maid) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormHousekeepingRepo) GetMaid(ctx context.Context, id string) (*models.Maid, error) {
	var m models.Maid
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *gormHousekeepingRepo) UpdateMaid(ctx context.Context, m *models.Maid) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *gormHousekeepingRepo) ListMaids(ctx context.Context, activeOnly bool) ([]models.Maid, error) {
	q := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var maids []models.Maid
	if err := q.Find(&maids).Error; err != nil {
		return nil, err
	}
	return maids, nil
}

func (r *gormHousekeepingRepo) CreateSchedule(ctx context.Context, s *models.CleaningSchedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *gormHousekeepingRepo) GetSchedule(ctx context.Context, id string) (*models.CleaningSchedule, error) {
	var s models.CleaningSchedule
	err := r.db.WithContext(ctx).Preload("Maid").Preload("Room").First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *gormHousekeepingRepo) UpdateSchedule(ctx context.Context, s *models.CleaningSchedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *gormHousekeepingRepo) DeleteSchedule(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CleaningSchedule{}, "id = ?", id).Error
}

func (r *gormHousekeepingRepo) ListSchedules(ctx context.Context, maidID string, from, to time.Time) ([]models.CleaningSchedule, error) {
	q := r.db.WithContext(ctx).Preload("Maid").Preload("Room").Order("date")
	if maidID != "" {
		q = q.Where("maid_id = ?", maidID)
	}
	if !from.IsZero() && !to.IsZero() {
		q = q.Where("date >= ? AND date < ?", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	var schedules []models.CleaningSchedule
	if err := q.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *gormHousekeepingRepo) CountPending(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.CleaningSchedule{}).
		Where("status = ? AND date <= ?", models.CleaningPending, day.Format("2006-01-02")).
		Count(&n).Error
	return n, err
}

func (r *gormHousekeepingRepo) Payroll(ctx context.Context, from, to time.Time) ([]PayrollRow, error) {
	var rows []PayrollRow
	err := r.db.WithContext(ctx).Model(&models.CleaningSchedule{}).
		Select("cleaning_schedules.maid_id as maid_id, maids.name as maid_name, count(*) as cleanings, sum(cleaning_schedules.amount) as amount").
		Joins("JOIN maids ON maids.id = cleaning_schedules.maid_id").
		Where("cleaning_schedules.status = ?", models.CleaningDone).
		Where("cleaning_schedules.date >= ? AND cleaning_schedules.date < ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Group("cleaning_schedules.maid_id, maids.name").
		Order("maids.name").
		Scan(&rows).Error
	return rows, err
}
