package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	robcron "github.com/robfig/cron/v3"

	"glowdesk/config"
	"glowdesk/models"
	"glowdesk/services/campaign"
	"glowdesk/services/notification"
	"glowdesk/services/tasks"
)

// InitCampaignWorker runs the async worker in background. It consumes the
// test email and nightly expiry sweep queues.
func InitCampaignWorker(sender notification.TestEmailSender, campaignSvc campaign.CampaignService) {
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
	mux.HandleFunc(tasks.TypeTestEmailSend, handleTestEmailTask(sender))
	mux.HandleFunc(tasks.TypeCampaignExpirySweep, handleExpirySweepTask(campaignSvc))

	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[CampaignWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CampaignWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CampaignWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// InitExpiryScheduler enqueues the campaign expiry sweep shortly after
// midnight every day, so stored active flags converge with computed
// validity without waiting for a read.
func InitExpiryScheduler() *robcron.Cron {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	c := robcron.New()
	if _, err := c.AddFunc("5 0 * * *", func() {
		if _, err := client.Enqueue(tasks.NewExpirySweepTask()); err != nil {
			log.Printf("[ExpiryScheduler] Failed to enqueue sweep: %v", err)
		}
	}); err != nil {
		log.Printf("[ExpiryScheduler] Failed to register schedule: %v", err)
		return c
	}
	c.Start()
	return c
}

func handleTestEmailTask(sender notification.TestEmailSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.TestEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[TestEmailHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[TestEmailHandler] Sending test email for campaign %s to %s", p.Campaign, p.Email)
		if err := sender.SendTestEmail(ctx, p); err != nil {
			log.Printf("[TestEmailHandler] Failed to send test email: %v", err)
			return err
		}
		return nil
	}
}

func handleExpirySweepTask(campaignSvc campaign.CampaignService) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		flipped, err := campaignSvc.ExpirySweep(ctx)
		if err != nil {
			log.Printf("[ExpirySweep] Sweep failed: %v", err)
			return err
		}
		log.Printf("[ExpirySweep] Deactivated %d expired campaigns", flipped)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CampaignWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
