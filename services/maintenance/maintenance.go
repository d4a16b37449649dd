package maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	maintenanceRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/maintenance"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// Sentinel errors surfaced to handlers as 4xx responses.
var (
	ErrTaskNotFound       = errors.New("maintenance task not found")
	ErrOccurrenceNotFound = errors.New("maintenance occurrence not found")
	ErrInvalidRRule       = errors.New("invalid recurrence rule")
)

// TaskInput is the canonical write shape for maintenance tasks.
type TaskInput struct {
	StayID      string  `json:"stayId" binding:"required"`
	RoomID      *string `json:"roomId"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	Cost        float64 `json:"cost"`
	DueDate     string  `json:"dueDate"`
	RRule       string  `json:"rrule"`
}

// MaintenanceService manages tickets and recurrence expansion.
type MaintenanceService interface {
	CreateTask(ctx context.Context, in TaskInput) (*models.MaintenanceTask, error)
	GetTask(ctx context.Context, id string) (*models.MaintenanceTask, error)
	UpdateTask(ctx context.Context, id string, in TaskInput) (*models.MaintenanceTask, error)
	SetTaskStatus(ctx context.Context, id, status string) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, stayID, status string) ([]models.MaintenanceTask, error)

	CompleteOccurrence(ctx context.Context, id, notes string) (*models.MaintenanceOccurrence, error)
	ListOccurrences(ctx context.Context, taskID string, from, to time.Time) ([]models.MaintenanceOccurrence, error)

	// ExpandRecurring materializes one occurrence per due date of every
	// recurring open task within [from, to). Safe to re-run: existing
	// occurrences are left untouched.
	ExpandRecurring(ctx context.Context, from, to time.Time) (int, error)
}

// DefaultMaintenanceService implements MaintenanceService.
type DefaultMaintenanceService struct {
	Repo maintenanceRepo.MaintenanceRepository
}

// parseRRule validates and parses an RFC 5545 recurrence rule, anchored at
// dtstart.
func parseRRule(rule string, dtstart time.Time) (*rrule.RRule, error) {
	opts, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRRule, err)
	}
	opts.Dtstart = dtstart
	r, err := rrule.NewRRule(*opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRRule, err)
	}
	return r, nil
}

// DueDates expands a rule into the due dates falling inside the half-open
// window [from, to).
func DueDates(rule string, anchor, from, to time.Time) ([]time.Time, error) {
	r, err := parseRRule(rule, anchor)
	if err != nil {
		return nil, err
	}
	// rrule.Between is inclusive on both ends; trim the exclusive end.
	dates := r.Between(from, to, true)
	out := dates[:0]
	for _, d := range dates {
		if d.Before(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *DefaultMaintenanceService) apply(in TaskInput, t *models.MaintenanceTask) error {
	var due *time.Time
	if in.DueDate != "" {
		d, err := time.Parse("2006-01-02", in.DueDate)
		if err != nil {
			return fmt.Errorf("invalid due date %q: %w", in.DueDate, err)
		}
		due = &d
	}
	if in.RRule != "" {
		anchor := time.Now().UTC().Truncate(24 * time.Hour)
		if due != nil {
			anchor = *due
		}
		if _, err := parseRRule(in.RRule, anchor); err != nil {
			return err
		}
	}

	t.StayID = in.StayID
	t.RoomID = in.RoomID
	t.Title = in.Title
	t.Description = in.Description
	t.Priority = in.Priority
	t.Cost = in.Cost
	t.DueDate = due
	t.RRule = in.RRule
	return nil
}

func (s *DefaultMaintenanceService) CreateTask(ctx context.Context, in TaskInput) (*models.MaintenanceTask, error) {
	var t models.MaintenanceTask
	if err := s.apply(in, &t); err != nil {
		return nil, err
	}
	t.Status = models.MaintenanceOpen
	if err := s.Repo.CreateTask(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DefaultMaintenanceService) GetTask(ctx context.Context, id string) (*models.MaintenanceTask, error) {
	t, err := s.Repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

func (s *DefaultMaintenanceService) UpdateTask(ctx context.Context, id string, in TaskInput) (*models.MaintenanceTask, error) {
	t, err := s.Repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}

	t.Stay = nil
	t.Room = nil
	t.Occurrences = nil
	if err := s.apply(in, t); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateTask(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DefaultMaintenanceService) SetTaskStatus(ctx context.Context, id, status string) error {
	t, err := s.Repo.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}
	t.Stay = nil
	t.Room = nil
	t.Occurrences = nil
	t.Status = status
	return s.Repo.UpdateTask(ctx, t)
}

func (s *DefaultMaintenanceService) DeleteTask(ctx context.Context, id string) error {
	return s.Repo.DeleteTask(ctx, id)
}

func (s *DefaultMaintenanceService) ListTasks(ctx context.Context, stayID, status string) ([]models.MaintenanceTask, error) {
	return s.Repo.ListTasks(ctx, stayID, status)
}

func (s *DefaultMaintenanceService) CompleteOccurrence(ctx context.Context, id, notes string) (*models.MaintenanceOccurrence, error) {
	o, err := s.Repo.GetOccurrence(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOccurrenceNotFound
	}

	now := time.Now().UTC()
	o.Status = models.MaintenanceDone
	o.CompletedAt = &now
	if notes != "" {
		o.Notes = notes
	}
	o.Task = nil
	if err := s.Repo.UpdateOccurrence(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *DefaultMaintenanceService) ListOccurrences(ctx context.Context, taskID string, from, to time.Time) ([]models.MaintenanceOccurrence, error) {
	return s.Repo.ListOccurrences(ctx, taskID, from, to)
}

func (s *DefaultMaintenanceService) ExpandRecurring(ctx context.Context, from, to time.Time) (int, error) {
	logger := utils.GetLogger()

	tasks, err := s.Repo.ListRecurringTasks(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, t := range tasks {
		anchor := t.CreatedAt.UTC().Truncate(24 * time.Hour)
		if t.DueDate != nil {
			anchor = *t.DueDate
		}
		dates, err := DueDates(t.RRule, anchor, from, to)
		if err != nil {
			logger.Error("skipping task with bad recurrence rule",
				zap.String("taskID", t.ID), zap.Error(err))
			continue
		}
		for _, d := range dates {
			if err := s.Repo.EnsureOccurrence(ctx, &models.MaintenanceOccurrence{
				TaskID:  t.ID,
				DueDate: d,
				Status:  models.MaintenanceOpen,
			}); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
