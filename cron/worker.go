package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"coachly/config"
	"coachly/models"
	"coachly/services/mailer"
	"coachly/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitEmailWorker runs the asynq delivery worker in the background. It
// drains the email queue and hands each payload to the SMTP sender.
func InitEmailWorker(sender mailer.Sender, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEmailDeliver, handleEmailTask(sender, logger))

	go func() {
		logger.Info("starting email delivery worker")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("email delivery worker failed: %v", err)
		}
	}()
}

// NewQueueClient builds the enqueue-side asynq client.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

func handleEmailTask(sender mailer.Sender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid email task payload", zap.Error(err))
			return asynq.SkipRetry
		}

		err := sender.Send(ctx, p.Settings, p.Message)
		if err == nil {
			logger.Info("email delivered", zap.String("to", p.Message.To), zap.String("subject", p.Message.Subject))
			return nil
		}

		var sendErr *mailer.SendError
		if errors.As(err, &sendErr) {
			switch sendErr.Code {
			case mailer.SendErrAuth, mailer.SendErrRecipient:
				// Retrying cannot fix bad credentials or a rejected
				// recipient.
				logger.Error("email delivery failed permanently",
					zap.String("to", p.Message.To), zap.String("code", string(sendErr.Code)), zap.Error(err))
				return asynq.SkipRetry
			}
		}

		logger.Warn("email delivery failed, will retry", zap.String("to", p.Message.To), zap.Error(err))
		return err
	}
}
