package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/config"
	reservationRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/reservation"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/housekeeping"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/maintenance"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// Task type names for the background queue.
const (
	TypeRollStatuses      = "reservations:roll_statuses"
	TypeGenerateCleanings = "housekeeping:generate"
	TypeExpandMaintenance = "maintenance:expand"
)

// Deps carries the services the nightly jobs run against.
type Deps struct {
	Reservations reservationRepo.ReservationRepository
	Housekeeping housekeeping.HousekeepingService
	Maintenance  maintenance.MaintenanceService
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	}
}

// InitWorker runs the async worker and the nightly scheduler in background.
func InitWorker(deps Deps) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRollStatuses, handleRollStatuses(deps))
	mux.HandleFunc(TypeGenerateCleanings, handleGenerateCleanings(deps))
	mux.HandleFunc(TypeExpandMaintenance, handleExpandMaintenance(deps))

	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler()
}

// runScheduler enqueues the nightly jobs. Each job runs once per day shortly
// after midnight UTC, matching the day boundary used everywhere else.
func runScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{
		Location: time.UTC,
	})

	entries := map[string]string{
		TypeRollStatuses:      "5 0 * * *",
		TypeGenerateCleanings: "15 0 * * *",
		TypeExpandMaintenance: "30 0 * * *",
	}
	for taskType, spec := range entries {
		if _, err := scheduler.Register(spec, asynq.NewTask(taskType, nil)); err != nil {
			log.Printf("[Worker] failed to register %s: %v", taskType, err)
		}
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[Worker] scheduler stopped: %v", err)
	}
}

// handleRollStatuses advances reservation statuses for the current day:
// scheduled stays whose check-in has arrived become active, active stays past
// checkout become completed.
func handleRollStatuses(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if err := deps.Reservations.RollStatuses(ctx, today); err != nil {
			utils.GetLogger().Error("failed to roll reservation statuses", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("reservation statuses rolled",
			zap.String("day", today.Format("2006-01-02")))
		return nil
	}
}

// handleGenerateCleanings creates pending cleanings for today's departures.
func handleGenerateCleanings(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		created, err := deps.Housekeeping.GenerateFromDepartures(ctx, today)
		if err != nil {
			utils.GetLogger().Error("failed to generate cleanings", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("departure cleanings generated", zap.Int("created", created))
		return nil
	}
}

// handleExpandMaintenance materializes recurring maintenance occurrences for
// the next 30 days.
func handleExpandMaintenance(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		from := time.Now().UTC().Truncate(24 * time.Hour)
		to := from.AddDate(0, 0, 30)
		created, err := deps.Maintenance.ExpandRecurring(ctx, from, to)
		if err != nil {
			utils.GetLogger().Error("failed to expand recurring maintenance", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("maintenance occurrences expanded", zap.Int("created", created))
		return nil
	}
}
