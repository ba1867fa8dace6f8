package database

import (
	"context"
	"fmt"
	"time"

	"video_transcode_trigger/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/notification"
	"go.uber.org/zap"
)

// ObjectCreatedEvents bucket events that trigger a transcode
var ObjectCreatedEvents = []string{string(notification.ObjectCreatedAll)}

// MinIOClient definition minio client
type MinIOClient struct {
	Client     *minio.Client
	BucketName string
}

// NewMinIOConnection create a new minio connection have retry
func NewMinIOConnection(d MinIOConnection) (*MinIOClient, error) {
	var mc *MinIOClient
	var err error

	for i := 1; i <= retry(d.RetryCount); i++ {
		mc, err = NewMinioClient(d.Endpoint, d.User, d.Password, d.BucketName, d.UseSSL)
		if err == nil {
			logger.Log.Info("minIO connected", zap.String("endpoint", d.Endpoint), zap.Int("attempt", i))
			return mc, nil
		}

		logger.Log.Warn("minIO connect failed, retrying...",
			zap.String("endpoint", d.Endpoint),
			zap.Int("attempt", i),
			zap.Error(err),
		)
		if i < retry(d.RetryCount) {
			time.Sleep(d.RetryInterval)
		}
	}

	return nil, err
}

// NewMinioClient create a new minio client, the watched bucket must already exist
func NewMinioClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	minioClient, err := minio.New(endpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: useSSL,
		})
	if err != nil {
		return nil, fmt.Errorf("初始化 MinIO 失敗: %w", err)
	}

	exists, err := minioClient.BucketExists(context.Background(), bucketName)
	if err != nil {
		return nil, fmt.Errorf("檢查 bucket [%s] 失敗: %w", bucketName, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket [%s] 不存在", bucketName)
	}

	return &MinIOClient{
		Client:     minioClient,
		BucketName: bucketName,
	}, nil
}

// ListenObjectCreated stream object created notifications of the bucket until ctx is done
func (m *MinIOClient) ListenObjectCreated(ctx context.Context, prefix, suffix string) <-chan notification.Info {
	return m.Client.ListenBucketNotification(ctx, m.BucketName, prefix, suffix, ObjectCreatedEvents)
}
