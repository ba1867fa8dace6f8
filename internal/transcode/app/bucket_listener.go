package app

import (
	"context"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/pkg/logger"

	"github.com/getsentry/sentry-go"
	"github.com/minio/minio-go/v7/pkg/notification"
	"go.uber.org/zap"
)

// NotificationSource bucket notification stream
type NotificationSource interface {
	ListenObjectCreated(ctx context.Context, prefix, suffix string) <-chan notification.Info
}

// BucketListener 監聽 MinIO bucket 的 object created 事件
type BucketListener struct {
	source  NotificationSource
	usecase TranscodeUseCase
	prefix  string
	suffix  string
}

// NewBucketListener create a BucketListener
func NewBucketListener(source NotificationSource, usecase TranscodeUseCase, prefix, suffix string) *BucketListener {
	return &BucketListener{
		source:  source,
		usecase: usecase,
		prefix:  prefix,
		suffix:  suffix,
	}
}

// Start 依序處理通知直到 ctx 結束或 stream 關閉
func (l *BucketListener) Start(ctx context.Context) error {
	infos := l.source.ListenObjectCreated(ctx, l.prefix, l.suffix)
	logger.Log.Info("Bucket listener started", zap.String("prefix", l.prefix), zap.String("suffix", l.suffix))

	for {
		select {
		case info, ok := <-infos:
			if !ok {
				logger.Log.Info("Bucket notification stream closed")
				return nil
			}
			if info.Err != nil {
				logger.Log.Warn("Bucket notification error", zap.Error(info.Err))
				continue
			}

			ack, err := l.usecase.HandleNotification(ctx, NotificationFromMinio(info))
			if err != nil {
				logger.Log.Error("Handle bucket notification failed", zap.Error(err))
				sentry.CaptureException(err)
				continue
			}
			logger.Log.Debug("Bucket notification handled", zap.String("ack", ack))
		case <-ctx.Done():
			logger.Log.Info("Bucket listener stopped")
			return ctx.Err()
		}
	}
}

// NotificationFromMinio MinIO 的 key 已 URL encode，保持原樣
func NotificationFromMinio(info notification.Info) domain.Notification {
	n := domain.Notification{Records: make([]domain.NotificationRecord, 0, len(info.Records))}
	for _, r := range info.Records {
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
