package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"roombook/config"
	bookingRepo "roombook/database/repository/booking"
	"roombook/models"
	"roombook/services/tasks"
)

// InitPurgeWorker runs the async purge worker and its schedule in background.
// Bookings dated before today are dead weight: nothing lists them, nothing
// can cancel them meaningfully, so a daily sweep keeps the collections bounded.
func InitPurgeWorker(repo bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 2,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePurgeExpired, handlePurgeTask(repo))

	go func() {
		log.Println("[PurgeWorker] starting async worker")
		if err := srv.Run(mux); err != nil {
			log.Printf("[PurgeWorker] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.Local})
	if _, err := scheduler.Register(config.AppConfig.PurgeSchedule, tasks.NewPurgeTask()); err != nil {
		log.Printf("[PurgeWorker] failed to register schedule %q: %v", config.AppConfig.PurgeSchedule, err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[PurgeWorker] scheduler stopped: %v", err)
		}
	}()
}

func handlePurgeTask(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := time.Now().Format("2006-01-02")
		for _, room := range models.Rooms {
			purged, err := repo.PurgeBefore(ctx, room, today)
			if err != nil {
				log.Printf("[PurgeWorker] purge failed for %s: %v", room.ID, err)
				return err
			}
			if purged > 0 {
				log.Printf("[PurgeWorker] purged %d expired bookings from %s", purged, room.ID)
			}
		}
		return nil
	}
}
