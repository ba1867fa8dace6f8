package repository

import (
	"context"
	"fmt"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/pkg/config"
	"video_transcode_trigger/pkg/database"

	"github.com/streadway/amqp"
)

type rabbitSubmitter struct {
	rabbit    database.RabbitRepo
	queueName string
}

// NewRabbitSubmitter publish jobs to a durable queue for self-hosted workers
func NewRabbitSubmitter(rabbit database.RabbitRepo, queueName string) JobSubmitter {
	return &rabbitSubmitter{rabbit: rabbit, queueName: queueName}
}

func (s *rabbitSubmitter) Submit(_ context.Context, job domain.JobSpec) (*domain.JobHandle, error) {
	id, body, err := encodeQueuedJob(job)
	if err != nil {
		return nil, &domain.SubmitError{Backend: config.SubmitterRabbitMQ, Err: fmt.Errorf("job JSON 序列化失敗: %w", err)}
	}

	err = s.rabbit.Publish(
		"",          // 預設 exchange
		s.queueName, // queue 名稱
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    id,
			Body:         body,
		},
	)
	if err != nil {
		return nil, &domain.SubmitError{Backend: config.SubmitterRabbitMQ, Err: err}
	}

	return &domain.JobHandle{ID: id, Backend: config.SubmitterRabbitMQ}, nil
}
