package repository

import (
	"context"
	"fmt"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/pkg/config"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter the part of *kafka.Writer used here
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaSubmitter struct {
	writer KafkaWriter
}

// NewKafkaSubmitter write jobs to a topic, keyed by output prefix so one video stays on one partition
func NewKafkaSubmitter(writer KafkaWriter) JobSubmitter {
	return &kafkaSubmitter{writer: writer}
}

func (s *kafkaSubmitter) Submit(ctx context.Context, job domain.JobSpec) (*domain.JobHandle, error) {
	id, body, err := encodeQueuedJob(job)
	if err != nil {
		return nil, &domain.SubmitError{Backend: config.SubmitterKafka, Err: fmt.Errorf("job JSON 序列化失敗: %w", err)}
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(job.OutputKeyPrefix),
		Value: body,
		Headers: []kafka.Header{
			{Key: "job_id", Value: []byte(id)},
		},
	})
	if err != nil {
		return nil, &domain.SubmitError{Backend: config.SubmitterKafka, Err: err}
	}

	return &domain.JobHandle{ID: id, Backend: config.SubmitterKafka}, nil
}
