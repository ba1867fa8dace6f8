package database

import (
	"fmt"
	"time"

	"video_transcode_trigger/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewKafkaWriterWithRetry 確認 broker 可連線後建立 Kafka Writer
func NewKafkaWriterWithRetry(k KafkaConnection) (*kafka.Writer, error) {
	var err error

	for attempt := 1; attempt <= retry(k.RetryCount); attempt++ {
		var conn *kafka.Conn
		conn, err = kafka.Dial("tcp", k.Brokers[0])
		if err == nil {
			conn.Close()
			logger.Log.Info("Kafka broker reachable", zap.Strings("brokers", k.Brokers), zap.Int("attempt", attempt))
			return &kafka.Writer{
				Addr:         kafka.TCP(k.Brokers...),
				Topic:        k.Topic,
				Balancer:     &kafka.Hash{},
				RequiredAcks: kafka.RequireAll,
			}, nil
		}

		logger.Log.Warn("Kafka broker unreachable, retrying...", zap.Int("attempt", attempt), zap.Error(err))
		if attempt < retry(k.RetryCount) {
			time.Sleep(k.RetryInterval)
		}
	}

	return nil, fmt.Errorf("無法建立 Kafka Writer，經過 %d 次嘗試: %w", retry(k.RetryCount), err)
}
