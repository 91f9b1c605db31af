package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tutorlink/config"
	"tutorlink/models"
	"tutorlink/services/notification"
	"tutorlink/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const reminderLeadTime = time.Hour

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderQueue schedules lesson reminders on the asynq queue. It satisfies
// the booking service's ReminderScheduler.
type ReminderQueue struct {
	Client *asynq.Client
}

// NewReminderQueue builds a queue client against the reminder Redis DB.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{Client: asynq.NewClient(redisOpts())}
}

// ScheduleLessonReminder enqueues a reminder firing one hour before the
// lesson starts. A lesson starting within the lead time gets no reminder.
func (q *ReminderQueue) ScheduleLessonReminder(b models.Booking) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", b.LessonDate+" "+b.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("cannot parse lesson start of booking %s: %w", b.ID, err)
	}
	fireAt := start.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:  b.ID,
		TutorID:    b.TutorID,
		LearnerID:  b.LearnerID,
		LessonDate: b.LessonDate,
		StartTime:  b.StartTime,
	}
	task, opts, err := tasks.NewLessonReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := q.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeLessonReminder, handleLessonReminder(notifSvc))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleLessonReminder(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		body := fmt.Sprintf("Your lesson starts at %s", p.StartTime)
		data := map[string]string{
			"booking_id": p.BookingID,
			"type":       "lesson_reminder",
		}

		// Both participants get the reminder; a failure on one side should
		// not suppress the other.
		var firstErr error
		for _, profileID := range []string{p.TutorID, p.LearnerID} {
			if err := notifSvc.SendPush(ctx, profileID, "Upcoming lesson", body, data); err != nil {
				log.Printf("[ReminderHandler] failed to notify %s: %v", profileID, err)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		return firstErr
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
