package maintenanceRepo

import (
	"context"
	"time"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// MaintenanceRepository persists maintenance tasks and their materialized
// occurrences.
type MaintenanceRepository interface {
	CreateTask(ctx context.Context, t *models.MaintenanceTask) error
	GetTask(ctx context.Context, id string) (*models.MaintenanceTask, error)
	UpdateTask(ctx context.Context, t *models.MaintenanceTask) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, stayID, status string) ([]models.MaintenanceTask, error)
	ListRecurringTasks(ctx context.Context) ([]models.MaintenanceTask, error)
	CountOpen(ctx context.Context) (int64, error)

	// EnsureOccurrence inserts the occurrence unless one already exists for
	// the same task and due date, so re-running expansion is idempotent.
	EnsureOccurrence(ctx context.Context, o *models.MaintenanceOccurrence) error
	GetOccurrence(ctx context.Context, id string) (*models.MaintenanceOccurrence, error)
	UpdateOccurrence(ctx context.Context, o *models.MaintenanceOccurrence) error
	ListOccurrences(ctx context.Context, taskID string, from, to time.Time) ([]models.MaintenanceOccurrence, error)
}
