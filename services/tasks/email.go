package tasks

import (
	"encoding/json"
	"time"

	"coachly/models"

	"github.com/hibiken/asynq"
)

const TypeEmailDeliver = "email:deliver"

// NewEmailDeliveryTask wraps an assembled email into an asynq task.
// Transient transport failures are retried with backoff; the task is
// dropped after retention expires.
func NewEmailDeliveryTask(payload models.EmailTaskPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEmailDeliver, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(60 * time.Second),
		asynq.Retention(24 * time.Hour),
	}
	return task, opts, nil
}
