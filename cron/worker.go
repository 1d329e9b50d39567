package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fieldserve/config"
	"fieldserve/services/notification"
	"fieldserve/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotifyWorker runs the async notification worker in background.
func InitNotifyWorker(notifier notification.Notifier) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeVisitCompleted, handleVisitCompletedTask(notifier))

	// Start async worker with retry logic.
	go func() {
		log.Println("[NotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleVisitCompletedTask(notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.VisitCompletedPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		return notifier.SendVisitCompleted(payload)
	}
}

// NewTaskClient builds the asynq client used to enqueue notification tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
}
