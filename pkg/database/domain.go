package database

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Connection definition connection string + retry setting
type Connection struct {
	ConnectStr string

	RetryCount    int
	RetryInterval time.Duration
}

// MongoDB definition mongo db
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// MinIOConnection definition minio
type MinIOConnection struct {
	Endpoint   string
	User       string
	Password   string
	BucketName string
	UseSSL     bool

	RetryCount    int
	RetryInterval time.Duration
}

// KafkaConnection definition kafka
type KafkaConnection struct {
	Brokers       []string
	Topic         string
	RetryCount    int
	RetryInterval time.Duration
}

// RedisConnection definition redis, sentinel is used when SentinelAddrs is set
type RedisConnection struct {
	URL           string
	MasterName    string
	SentinelAddrs []string
}

// TranscoderConnection definition aws elastic transcoder
type TranscoderConnection struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// FirebaseConnection definition firebase realtime database
type FirebaseConnection struct {
	DatabaseURL     string
	CredentialsFile string
	CredentialsJSON string
}

func retry(count int) int {
	if count < 1 {
		return 1
	}
	return count
}
