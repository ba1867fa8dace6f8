package repository

import (
	"context"

	"video_transcode_trigger/internal/transcode/domain"

	"firebase.google.com/go/v4/db"
)

// RealtimeDB path based write of the realtime database
type RealtimeDB interface {
	Set(ctx context.Context, path string, v interface{}) error
}

type firebaseRTDB struct {
	client *db.Client
}

// NewFirebaseRTDB adapt a firebase db client to RealtimeDB
func NewFirebaseRTDB(client *db.Client) RealtimeDB {
	return &firebaseRTDB{client: client}
}

func (f *firebaseRTDB) Set(ctx context.Context, path string, v interface{}) error {
	return f.client.NewRef(path).Set(ctx, v)
}

type firebaseMarkerRepo struct {
	db RealtimeDB
}

// NewFirebaseMarkerRepo create a firebase MarkerRepo
func NewFirebaseMarkerRepo(rtdb RealtimeDB) MarkerRepo {
	return &firebaseMarkerRepo{db: rtdb}
}

func (r *firebaseMarkerRepo) SetTranscoding(ctx context.Context, groupKey string) error {
	path := domain.MarkerPath(groupKey)
	if err := r.db.Set(ctx, path, domain.StartedMarker()); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	return nil
}
