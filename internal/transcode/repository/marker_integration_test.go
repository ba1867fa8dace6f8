package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/pkg/database"
	"video_transcode_trigger/pkg/logger"
	testtool "video_transcode_trigger/pkg/test_tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRedisMarkerRepoIntegration(t *testing.T) {
	logger.SetNewNop()
	host, port := testtool.RequireContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:latest",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	})

	ctx := context.Background()
	client, err := database.NewRedisClient(ctx, database.RedisConnection{
		URL: fmt.Sprintf("redis://%s:%s/0", host, port),
	})
	require.NoError(t, err)
	defer client.Close()

	store := database.NewRedisRepository[domain.ProgressMarker](client)
	repo := NewRedisMarkerRepo(store)

	require.NoError(t, repo.SetTranscoding(ctx, "my video"))
	require.NoError(t, repo.SetTranscoding(ctx, "my video"))

	raw, err := client.Get(ctx, "videos/my video").Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"transcoding":true}`, raw)

	ttl, err := client.TTL(ctx, "videos/my video").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}

func TestMongoMarkerRepoIntegration(t *testing.T) {
	logger.SetNewNop()
	host, port := testtool.RequireContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})

	ctx := context.Background()
	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://%s:%s", host, port),
		RetryCount:    5,
		RetryInterval: time.Second,
	}, "transcode")
	require.NoError(t, err)
	defer mongoDB.Close(ctx)

	collection := mongoDB.Database.Collection(domain.MarkerCollection)
	repo := NewMongoMarkerRepo(collection)

	require.NoError(t, repo.SetTranscoding(ctx, "abc"))
	require.NoError(t, repo.SetTranscoding(ctx, "abc"))

	count, err := collection.CountDocuments(ctx, bson.M{"_id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var doc bson.M
	require.NoError(t, collection.FindOne(ctx, bson.M{"_id": "abc"}).Decode(&doc))
	assert.Equal(t, true, doc["transcoding"])
}

func TestPostgresMarkerRepoIntegration(t *testing.T) {
	logger.SetNewNop()
	host, port := testtool.RequireContainer(t, testcontainers.ContainerRequest{
		Image: "postgres:latest",
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "markerdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	})

	db, err := database.NewPGConnection(database.Connection{
		ConnectStr:    fmt.Sprintf("postgres://test:test@%s:%s/markerdb?sslmode=disable", host, port),
		RetryCount:    5,
		RetryInterval: time.Second,
	})
	require.NoError(t, err)

	repo := NewPostgresMarkerRepo(db)
	require.NoError(t, repo.AutoMigrate())

	ctx := context.Background()
	require.NoError(t, repo.SetTranscoding(ctx, "abc"))
	require.NoError(t, repo.SetTranscoding(ctx, "abc"))

	marker, err := repo.FindMarker(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, marker.Transcoding)

	var count int64
	require.NoError(t, db.Model(&domain.VideoMarker{}).Where("group_key = ?", "abc").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
