package maintenanceRepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/database"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

type gormMaintenanceRepo struct {
	db *gorm.DB
}

// NewGormMaintenanceRepo constructs a MaintenanceRepository backed by the
// shared handle.
func NewGormMaintenanceRepo() MaintenanceRepository {
	return &gormMaintenanceRepo{db: database.GetDB()}
}

func (r *gormMaintenanceRepo) CreateTask(ctx context.Context, t *models.MaintenanceTask) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *gormMaintenanceRepo) GetTask(ctx context.Context, id string) (*models.MaintenanceTask, error) {
	var t models.MaintenanceTask
	err := r.db.WithContext(ctx).Preload("Stay").Preload("Room").Preload("Occurrences").
		First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *gormMaintenanceRepo) UpdateTask(ctx context.Context, t *models.MaintenanceTask) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *gormMaintenanceRepo) DeleteTask(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MaintenanceOccurrence{}, "task_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MaintenanceTask{}, "id = ?", id).Error
	})
}

func (r *gormMaintenanceRepo) ListTasks(ctx context.Context, stayID, status string) ([]models.MaintenanceTask, error) {
	q := r.db.WithContext(ctx).Preload("Room").Order("priority desc, created_at")
	if stayID != "" {
		q = q.Where("stay_id = ?", stayID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tasks []models.MaintenanceTask
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *gormMaintenanceRepo) ListRecurringTasks(ctx context.Context) ([]models.MaintenanceTask, error) {
	var tasks []models.MaintenanceTask
	err := r.db.WithContext(ctx).
		Where("rrule <> '' AND status = ?", models.MaintenanceOpen).
		Find(&tasks).Error
	return tasks, err
}

func (r *gormMaintenanceRepo) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.MaintenanceTask{}).
		Where("status = ?", models.MaintenanceOpen).Count(&n).Error
	return n, err
}

func (r *gormMaintenanceRepo) EnsureOccurrence(ctx context.Context, o *models.MaintenanceOccurrence) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.MaintenanceOccurrence
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("task_id = ? AND due_date = ?", o.TaskID, o.DueDate.Format("2006-01-02")).
			Take(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(o).Error
	})
}

func (r *gormMaintenanceRepo) GetOccurrence(ctx context.Context, id string) (*models.MaintenanceOccurrence, error) {
	var o models.MaintenanceOccurrence
	err := r.db.WithContext(ctx).Preload("Task").First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *gormMaintenanceRepo) UpdateOccurrence(ctx context.Context, o *models.MaintenanceOccurrence) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *gormMaintenanceRepo) ListOccurrences(ctx context.Context, taskID string, from, to time.Time) ([]models.MaintenanceOccurrence, error) {
	q := r.db.WithContext(ctx).Preload("Task").Order("due_date")
	if taskID != "" {
		q = q.Where("task_id = ?", taskID)
	}
	if !from.IsZero() && !to.IsZero() {
		q = q.Where("due_date >= ? AND due_date < ?", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	var out []models.MaintenanceOccurrence
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
