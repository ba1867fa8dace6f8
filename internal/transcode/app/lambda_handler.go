package app

import (
	"context"
	"time"

	"video_transcode_trigger/internal/transcode/domain"

	"github.com/aws/aws-lambda-go/events"
	"github.com/getsentry/sentry-go"
)

// SentryFlushTimeout Lambda 凍結前送出 sentry event 的上限
const SentryFlushTimeout = 2 * time.Second

// LambdaHandler S3 event entry point
type LambdaHandler struct {
	Usecase TranscodeUseCase
}

// Handle returns the ack on success; errors go back to the Lambda runtime unchanged
func (h *LambdaHandler) Handle(ctx context.Context, event events.S3Event) (string, error) {
	ack, err := h.Usecase.HandleNotification(ctx, NotificationFromS3Event(event))
	if err != nil {
		// sentry 未初始化時為 no-op；handler 返回後 process 會被凍結，需在此 flush
		sentry.CaptureException(err)
		sentry.Flush(SentryFlushTimeout)
		return "", err
	}
	return ack, nil
}

// NotificationFromS3Event keep the raw (still encoded) object key
func NotificationFromS3Event(event events.S3Event) domain.Notification {
	n := domain.Notification{Records: make([]domain.NotificationRecord, 0, len(event.Records))}
	for _, r := range event.Records {
		n.Records = append(n.Records, domain.NotificationRecord{
			EventName: r.EventName,
			S3: domain.S3Entity{
				Bucket: domain.S3Bucket{Name: r.S3.Bucket.Name},
				Object: domain.S3Object{
					Key:  r.S3.Object.Key,
					Size: r.S3.Object.Size,
					ETag: r.S3.Object.ETag,
				},
			},
		})
	}
	return n
}
