package repository

import (
	"context"
	"sync"
	"time"

	"video_transcode_trigger/internal/transcode/domain"

	"github.com/aws/aws-sdk-go-v2/service/elastictranscoder"
	"github.com/segmentio/kafka-go"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MockElasticTranscoder mock ElasticTranscoderAPI
type MockElasticTranscoder struct {
	mock.Mock
}

func (m *MockElasticTranscoder) CreateJob(ctx context.Context, params *elastictranscoder.CreateJobInput, optFns ...func(*elastictranscoder.Options)) (*elastictranscoder.CreateJobOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) != nil {
		return args.Get(0).(*elastictranscoder.CreateJobOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRabbitRepo mock database.RabbitRepo
type MockRabbitRepo struct {
	mock.Mock
}

func (m *MockRabbitRepo) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

// MockKafkaWriter mock KafkaWriter
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

// MockRealtimeDB mock RealtimeDB
type MockRealtimeDB struct {
	mock.Mock
}

func (m *MockRealtimeDB) Set(ctx context.Context, path string, v interface{}) error {
	args := m.Called(ctx, path, v)
	return args.Error(0)
}

// MockMarkerCollection mock MarkerCollection
type MockMarkerCollection struct {
	mock.Mock
}

func (m *MockMarkerCollection) ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, filter, replacement, opts)
	if args.Get(0) != nil {
		return args.Get(0).(*mongo.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMarkerStore mock database.RedisRepository[domain.ProgressMarker]
type MockMarkerStore struct {
	mock.Mock
}

func (m *MockMarkerStore) Set(ctx context.Context, key string, value domain.ProgressMarker, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockMarkerStore) Get(ctx context.Context, key string) (domain.ProgressMarker, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.ProgressMarker), args.Error(1)
}

func (m *MockMarkerStore) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// memoryMarkerStore in-memory RedisRepository, last write wins
type memoryMarkerStore struct {
	mu     sync.Mutex
	values map[string]domain.ProgressMarker
	writes int
}

func newMemoryMarkerStore() *memoryMarkerStore {
	return &memoryMarkerStore{values: map[string]domain.ProgressMarker{}}
}

func (s *memoryMarkerStore) Set(_ context.Context, key string, value domain.ProgressMarker, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.writes++
	return nil
}

func (s *memoryMarkerStore) Get(_ context.Context, key string) (domain.ProgressMarker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *memoryMarkerStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
