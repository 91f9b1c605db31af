package tasks

import (
	"encoding/json"
	"time"

	"tutorlink/models"

	"github.com/hibiken/asynq"
)

const TypeLessonReminder = "reminder:lesson"

// NewLessonReminderTask builds an asynq task that fires at the given moment.
func NewLessonReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeLessonReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
