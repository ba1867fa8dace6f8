package repository

import (
	"context"

	"video_transcode_trigger/internal/transcode/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresMarkerRepo MarkerRepo on a video_markers table
type PostgresMarkerRepo interface {
	MarkerRepo
	AutoMigrate() error
	FindMarker(ctx context.Context, groupKey string) (*domain.VideoMarker, error)
}

type postgresMarkerRepo struct {
	db *gorm.DB
}

// NewPostgresMarkerRepo create a postgres MarkerRepo
func NewPostgresMarkerRepo(db *gorm.DB) PostgresMarkerRepo {
	return &postgresMarkerRepo{db: db}
}

// AutoMigrate 建立 video_markers 資料表
func (r *postgresMarkerRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.VideoMarker{})
}

// SetTranscoding INSERT ... ON CONFLICT (group_key) DO UPDATE
func (r *postgresMarkerRepo) SetTranscoding(ctx context.Context, groupKey string) error {
	marker := domain.VideoMarker{GroupKey: groupKey, Transcoding: true}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"transcoding", "updated_at"}),
	}).Create(&marker).Error
	if err != nil {
		return &domain.WriteError{Path: domain.MarkerPath(groupKey), Err: err}
	}
	return nil
}

func (r *postgresMarkerRepo) FindMarker(ctx context.Context, groupKey string) (*domain.VideoMarker, error) {
	var marker domain.VideoMarker
	if err := r.db.WithContext(ctx).First(&marker, "group_key = ?", groupKey).Error; err != nil {
		return nil, err
	}
	return &marker, nil
}
