package repository

import (
	"context"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/pkg/database"
)

type redisMarkerRepo struct {
	store database.RedisRepository[domain.ProgressMarker]
}

// NewRedisMarkerRepo markers as JSON values under videos/{groupKey}, no TTL
func NewRedisMarkerRepo(store database.RedisRepository[domain.ProgressMarker]) MarkerRepo {
	return &redisMarkerRepo{store: store}
}

func (r *redisMarkerRepo) SetTranscoding(ctx context.Context, groupKey string) error {
	path := domain.MarkerPath(groupKey)
	if err := r.store.Set(ctx, path, domain.StartedMarker(), 0); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	return nil
}
