package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"synkt/config"
	"synkt/services/calendar"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeCalendarSync = "calendar:sync"

// SyncPayload identifies the user whose calendar should be refreshed.
type SyncPayload struct {
	UserID string `json:"userId"`
}

// NewSyncTask builds an asynq task that refreshes one user's availability.
func NewSyncTask(userID string) (*asynq.Task, error) {
	payload, err := json.Marshal(SyncPayload{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync payload: %w", err)
	}
	return asynq.NewTask(TypeCalendarSync, payload), nil
}

// NewSyncClient creates the asynq client handlers use to enqueue syncs.
func NewSyncClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSyncQueueDB,
	})
}

// InitSyncWorker runs the async worker in background.
func InitSyncWorker(calSvc calendar.CalendarService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSyncQueueDB,
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
	mux.HandleFunc(TypeCalendarSync, handleSyncTask(calSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[SyncWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SyncWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SyncWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSyncTask(calSvc calendar.CalendarService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p SyncPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SyncHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[SyncHandler] refreshing availability for user %s", p.UserID)

		if _, err := calSvc.SyncCalendar(p.UserID); err != nil {
			log.Printf("[SyncHandler] failed to sync calendar for user %s: %v", p.UserID, err)
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
		DB:       config.AppConfig.RedisSyncQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SyncWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
