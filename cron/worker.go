package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"aria/config"
	userRepo "aria/database/repository/user"
	"aria/services/device"
	"aria/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitDirectiveWorker runs the async worker in background. It delivers FCM
// nudges whenever a directive is queued so devices drain promptly instead of
// waiting for their next poll.
func InitDirectiveWorker(users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDirectiveDB,
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
	mux.HandleFunc(device.TypeDirectivePush, handleDirectivePush(users))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[DirectiveWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DirectiveWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DirectiveWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDirectivePush(users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p device.DirectivePushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DirectivePush] invalid payload: %v", err)
			return err
		}

		usr, err := users.GetByID(p.UserID)
		if err != nil {
			log.Printf("[DirectivePush] failed to load user %s: %v", p.UserID, err)
			return err
		}
		if usr == nil || usr.FCMToken == "" {
			// Nothing to nudge; the queue is drained on the next poll.
			return nil
		}

		if utils.FCMClient == nil {
			log.Println("[DirectivePush] FCM client not initialized, skipping nudge")
			return nil
		}

		msg := &messaging.Message{
			Token: usr.FCMToken,
			Data: map[string]string{
				"type": device.TypeDirectivePush,
			},
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			log.Printf("[DirectivePush] failed to send nudge to %s: %v", p.UserID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDirectiveDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[DirectiveWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
