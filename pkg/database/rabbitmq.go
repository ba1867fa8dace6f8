package database

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"video_transcode_trigger/pkg/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// RabbitRepo definition rabbit repo
type RabbitRepo interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// PublishConfirmTimeout 等待 broker confirm 的上限
const PublishConfirmTimeout = 10 * time.Second

// ErrPublishNacked broker refused the message
var ErrPublishNacked = errors.New("rabbitmq nacked the message")

// amqpPublisher the part of *amqp.Channel used by rabbitRepo
type amqpPublisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitRepo struct {
	mu        sync.Mutex
	channel   amqpPublisher
	confirms  <-chan amqp.Confirmation
	timeout   time.Duration
	published uint64
}

// NewRabbitRepository put the channel in confirm mode, Publish returns once the broker acked the message
func NewRabbitRepository(ch *amqp.Channel) (RabbitRepo, error) {
	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("開啟 publisher confirm 失敗: %w", err)
	}
	return newConfirmRepo(ch, ch.NotifyPublish(make(chan amqp.Confirmation, 16)), PublishConfirmTimeout), nil
}

func newConfirmRepo(ch amqpPublisher, confirms <-chan amqp.Confirmation, timeout time.Duration) *rabbitRepo {
	return &rabbitRepo{channel: ch, confirms: confirms, timeout: timeout}
}

// ConnectRabbitMQWithRetry 嘗試連線到 RabbitMQ
func ConnectRabbitMQWithRetry(d Connection) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error

	for attempt := 1; attempt <= retry(d.RetryCount); attempt++ {
		conn, err = amqp.Dial(d.ConnectStr)
		if err == nil {
			logger.Log.Info("RabbitMQ connected", zap.Int("attempt", attempt))
			return conn, nil
		}

		logger.Log.Warn("RabbitMQ connect failed, retrying...", zap.Int("attempt", attempt), zap.Error(err))
		if attempt < retry(d.RetryCount) {
			time.Sleep(d.RetryInterval)
		}
	}

	return nil, fmt.Errorf("無法連線 RabbitMQ，經過 %d 次嘗試: %w", retry(d.RetryCount), err)
}

// OpenQueueChannel 取得 Channel 並宣告 durable queue
func OpenQueueChannel(conn *amqp.Connection, queueName string) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("建立 RabbitMQ Channel 失敗: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queueName, // queue name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // arguments
	); err != nil {
		ch.Close()
		return nil, fmt.Errorf("queue[%s] declare failed: %w", queueName, err)
	}
	return ch, nil
}

func (r *rabbitRepo) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.channel.Publish(exchange, key, mandatory, immediate, msg); err != nil {
		return err
	}
	// delivery tag 從 1 開始，每次 publish 加一
	r.published++

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	for {
		select {
		case c, ok := <-r.confirms:
			if !ok {
				return errors.New("rabbitmq channel closed before confirm")
			}
			if c.DeliveryTag < r.published {
				// 前一次逾時留下的 confirm
				continue
			}
			if !c.Ack {
				return fmt.Errorf("%w: delivery tag %d", ErrPublishNacked, c.DeliveryTag)
			}
			return nil
		case <-timer.C:
			return fmt.Errorf("rabbitmq publish confirm timeout after %s", r.timeout)
		}
	}
}
