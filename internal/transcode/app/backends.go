package app

import (
	"context"
	"fmt"
	"time"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/internal/transcode/repository"
	"video_transcode_trigger/pkg/config"
	"video_transcode_trigger/pkg/database"
	errprocess "video_transcode_trigger/pkg/err"
	"video_transcode_trigger/pkg/logger"

	"go.uber.org/zap"
)

// Backends 啟動時建立一次，之後每次 invocation 共用
type Backends struct {
	Submitter repository.JobSubmitter
	Markers   repository.MarkerRepo

	closers []func()
}

// Close release backend connections in reverse order
func (b *Backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// NewBackends connect submitter + marker store chosen by config
func NewBackends(ctx context.Context, cfg config.TranscodeTrigger) (*Backends, error) {
	b := &Backends{}

	submitter, err := b.newSubmitter(ctx, cfg.Submitter)
	if err != nil {
		b.Close()
		return nil, errprocess.Wrap("create job submitter", err, zap.String("backend", cfg.Submitter.Backend))
	}
	b.Submitter = submitter

	markers, err := b.newMarkerRepo(ctx, cfg.Marker)
	if err != nil {
		b.Close()
		return nil, errprocess.Wrap("create marker repo", err, zap.String("backend", cfg.Marker.Backend))
	}
	b.Markers = markers

	logger.Log.Info("Backends ready",
		zap.String("submitter", cfg.Submitter.Backend),
		zap.String("marker", cfg.Marker.Backend),
	)
	return b, nil
}

// PresetsFromConfig map preset config to domain presets
func PresetsFromConfig(p config.PresetsConfig) domain.RenditionPresets {
	return domain.RenditionPresets{
		Web480p:      p.Web480p,
		Generic720p:  p.Generic720p,
		Web720p:      p.Web720p,
		Generic1080p: p.Generic1080p,
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (b *Backends) newSubmitter(ctx context.Context, cfg config.SubmitterConfig) (repository.JobSubmitter, error) {
	switch cfg.Backend {
	case config.SubmitterElasticTranscoder:
		client, err := database.NewElasticTranscoderClient(ctx, database.TranscoderConnection{
			Region:          cfg.Region,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return repository.NewElasticTranscoderSubmitter(client), nil

	case config.SubmitterRabbitMQ:
		conn, err := database.ConnectRabbitMQWithRetry(database.Connection{
			ConnectStr:    cfg.RabbitMQURL,
			RetryCount:    cfg.RetryCount,
			RetryInterval: seconds(cfg.RetryInterval),
		})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { conn.Close() })

		ch, err := database.OpenQueueChannel(conn, domain.QueueName)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { ch.Close() })
		rabbit, err := database.NewRabbitRepository(ch)
		if err != nil {
			return nil, err
		}
		return repository.NewRabbitSubmitter(rabbit, domain.QueueName), nil

	case config.SubmitterKafka:
		writer, err := database.NewKafkaWriterWithRetry(database.KafkaConnection{
			Brokers:       cfg.KafkaBrokers,
			Topic:         cfg.KafkaTopic,
			RetryCount:    cfg.RetryCount,
			RetryInterval: seconds(cfg.RetryInterval),
		})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { writer.Close() })
		return repository.NewKafkaSubmitter(writer), nil
	}
	return nil, errprocess.Set(fmt.Sprintf("unknown submitter backend %q", cfg.Backend))
}

func (b *Backends) newMarkerRepo(ctx context.Context, cfg config.MarkerConfig) (repository.MarkerRepo, error) {
	switch cfg.Backend {
	case config.MarkerFirebase:
		client, err := database.NewFirebaseDatabase(ctx, database.FirebaseConnection{
			DatabaseURL:     cfg.DatabaseURL,
			CredentialsFile: cfg.CredentialsFile,
			CredentialsJSON: cfg.CredentialsJSON,
		})
		if err != nil {
			return nil, err
		}
		return repository.NewFirebaseMarkerRepo(repository.NewFirebaseRTDB(client)), nil

	case config.MarkerRedis:
		client, err := database.NewRedisClient(ctx, database.RedisConnection{
			URL:           cfg.DatabaseURL,
			MasterName:    cfg.RedisMasterName,
			SentinelAddrs: cfg.RedisSentinelAddrs,
		})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { client.Close() })
		return repository.NewRedisMarkerRepo(database.NewRedisRepository[domain.ProgressMarker](client)), nil

	case config.MarkerMongo:
		mongoDB, err := database.NewMongoDB(ctx, database.Connection{
			ConnectStr:    cfg.DatabaseURL,
			RetryCount:    cfg.RetryCount,
			RetryInterval: seconds(cfg.RetryInterval),
		}, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { mongoDB.Close(context.Background()) })
		return repository.NewMongoMarkerRepo(mongoDB.Database.Collection(domain.MarkerCollection)), nil

	case config.MarkerPostgres:
		db, err := database.NewPGConnection(database.Connection{
			ConnectStr:    cfg.DatabaseURL,
			RetryCount:    cfg.RetryCount,
			RetryInterval: seconds(cfg.RetryInterval),
		})
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			b.closers = append(b.closers, func() { sqlDB.Close() })
		}

		repo := repository.NewPostgresMarkerRepo(db)
		if err := repo.AutoMigrate(); err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, errprocess.Set(fmt.Sprintf("unknown marker backend %q", cfg.Backend))
}
