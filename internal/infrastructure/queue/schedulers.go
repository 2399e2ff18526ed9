package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"microblog-backend/internal/shared"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)
	return &Scheduler{scheduler: scheduler}
}

// RegisterMaintenanceJobs registers the recurring media sweep. Runs nightly
// at 3 AM, a low-traffic window.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	payload, err := json.Marshal(shared.CleanupOrphanMediaPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeCleanupOrphanMedia, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(shared.QueueMedia),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to register CleanupOrphanMedia job")
		return err
	}

	log.Info().Msg("registered CleanupOrphanMedia: daily at 3 AM")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
