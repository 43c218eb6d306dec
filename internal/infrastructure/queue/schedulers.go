package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"library-api/internal/config"
	"library-api/internal/domains/loan/job"
	"library-api/internal/shared"
	"library-api/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterLoanJobs() error {
	return s.registerNotifyLateLoansJob()
}

// registerNotifyLateLoansJob fires the overdue sweep every 2 minutes by
// default. Uniqueness keeps a slow sweep from stacking up behind the next
// firing; there is never more than one pending or running sweep.
func (s *Scheduler) registerNotifyLateLoansJob() error {
	payload, err := json.Marshal(job.NotifyLateLoansPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeNotifyLateLoans, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.LateLoanCron,
		task,
		asynq.Queue(shared.QueueNotification),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
		asynq.Unique(90*time.Second),
	)

	if err != nil {
		logger.Error("Failed to register NotifyLateLoans job", err)
		return err
	}

	logger.Info("Registered NotifyLateLoans", map[string]interface{}{
		"cron": s.jobConfig.LateLoanCron,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
