package repository

import (
	"context"
	"errors"
	"testing"

	"video_transcode_trigger/internal/transcode/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestFirebaseMarkerRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("寫入 videos/{groupKey}", func(t *testing.T) {
		rtdb := new(MockRealtimeDB)
		rtdb.On("Set", ctx, "videos/videos", domain.ProgressMarker{Transcoding: true}).Return(nil).Once()

		err := NewFirebaseMarkerRepo(rtdb).SetTranscoding(ctx, "videos")
		assert.NoError(t, err)
		rtdb.AssertExpectations(t)
	})

	t.Run("寫入失敗回傳 WriteError", func(t *testing.T) {
		rtdb := new(MockRealtimeDB)
		cause := errors.New("Permission denied")
		rtdb.On("Set", ctx, "videos/abc", mock.Anything).Return(cause).Once()

		err := NewFirebaseMarkerRepo(rtdb).SetTranscoding(ctx, "abc")

		var writeErr *domain.WriteError
		require.ErrorAs(t, err, &writeErr)
		assert.Equal(t, "videos/abc", writeErr.Path)
		assert.ErrorIs(t, err, cause)
	})
}

func TestRedisMarkerRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("重複寫入結果相同", func(t *testing.T) {
		store := newMemoryMarkerStore()
		repo := NewRedisMarkerRepo(store)

		require.NoError(t, repo.SetTranscoding(ctx, "abc"))
		first := map[string]domain.ProgressMarker{}
		for k, v := range store.values {
			first[k] = v
		}

		require.NoError(t, repo.SetTranscoding(ctx, "abc"))
		assert.Equal(t, first, store.values)
		assert.Equal(t, map[string]domain.ProgressMarker{"videos/abc": {Transcoding: true}}, store.values)
		assert.Equal(t, 2, store.writes)
	})

	t.Run("不設定 TTL", func(t *testing.T) {
		store := new(MockMarkerStore)
		store.On("Set", ctx, "videos/abc", domain.ProgressMarker{Transcoding: true}, mock.AnythingOfType("time.Duration")).
			Return(nil).Run(func(args mock.Arguments) {
			assert.Zero(t, args.Get(3))
		}).Once()

		assert.NoError(t, NewRedisMarkerRepo(store).SetTranscoding(ctx, "abc"))
		store.AssertExpectations(t)
	})

	t.Run("寫入失敗回傳 WriteError", func(t *testing.T) {
		store := new(MockMarkerStore)
		store.On("Set", ctx, "videos/abc", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		err := NewRedisMarkerRepo(store).SetTranscoding(ctx, "abc")

		var writeErr *domain.WriteError
		require.ErrorAs(t, err, &writeErr)
		assert.Equal(t, "videos/abc", writeErr.Path)
	})
}

func TestMongoMarkerRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert by group key", func(t *testing.T) {
		collection := new(MockMarkerCollection)
		collection.On("ReplaceOne", ctx,
			bson.M{"_id": "abc"},
			bson.M{"_id": "abc", "transcoding": true},
			mock.MatchedBy(func(opts []*options.ReplaceOptions) bool {
				return len(opts) == 1 && opts[0].Upsert != nil && *opts[0].Upsert
			}),
		).Return(&mongo.UpdateResult{UpsertedCount: 1}, nil).Once()

		assert.NoError(t, NewMongoMarkerRepo(collection).SetTranscoding(ctx, "abc"))
		collection.AssertExpectations(t)
	})

	t.Run("寫入失敗回傳 WriteError", func(t *testing.T) {
		collection := new(MockMarkerCollection)
		collection.On("ReplaceOne", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, mongo.ErrClientDisconnected).Once()

		err := NewMongoMarkerRepo(collection).SetTranscoding(ctx, "abc")

		var writeErr *domain.WriteError
		require.ErrorAs(t, err, &writeErr)
		assert.ErrorIs(t, err, mongo.ErrClientDisconnected)
	})
}
