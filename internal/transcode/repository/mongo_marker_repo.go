package repository

import (
	"context"

	"video_transcode_trigger/internal/transcode/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MarkerCollection the part of *mongo.Collection used here
type MarkerCollection interface {
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
}

type mongoMarkerRepo struct {
	collection MarkerCollection
}

// NewMongoMarkerRepo one document per group in the "videos" collection, _id = groupKey
func NewMongoMarkerRepo(collection MarkerCollection) MarkerRepo {
	return &mongoMarkerRepo{collection: collection}
}

func (r *mongoMarkerRepo) SetTranscoding(ctx context.Context, groupKey string) error {
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": groupKey},
		bson.M{"_id": groupKey, "transcoding": true},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return &domain.WriteError{Path: domain.MarkerPath(groupKey), Err: err}
	}
	return nil
}
