package app

import (
	"context"
	"errors"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/internal/transcode/repository"
	"video_transcode_trigger/pkg/logger"

	"go.uber.org/zap"
)

// TranscodeUseCase 收到物件建立通知後送出轉碼工作並寫入進度標記
type TranscodeUseCase interface {
	HandleNotification(ctx context.Context, n domain.Notification) (string, error)
}

type transcodeUseCase struct {
	Submitter  repository.JobSubmitter
	MarkerRepo repository.MarkerRepo
	PipelineID string
	Presets    domain.RenditionPresets
}

// NewTranscodeUseCase 建立 TranscodeUseCase，client 於啟動時建立一次後注入
func NewTranscodeUseCase(submitter repository.JobSubmitter,
	markerRepo repository.MarkerRepo,
	pipelineID string,
	presets domain.RenditionPresets,
) TranscodeUseCase {
	return &transcodeUseCase{
		Submitter:  submitter,
		MarkerRepo: markerRepo,
		PipelineID: pipelineID,
		Presets:    presets,
	}
}

// HandleNotification derive keys -> submit job -> write marker.
// A submit failure never reaches the marker; a marker failure leaves the submitted job running.
func (s *transcodeUseCase) HandleNotification(ctx context.Context, n domain.Notification) (string, error) {
	rawKey, dropped, ok := n.FirstKey()
	if !ok {
		logger.Log.Warn("Notification without records")
		return "", domain.ErrEmptyNotification
	}
	if dropped > 0 {
		// 只處理第一筆，其餘紀錄保留原行為不處理
		logger.Log.Warn("Notification carries more than one record, only the first is processed",
			zap.Int("dropped", dropped))
	}

	logger.Log.Info("Object key", zap.String("key", rawKey))

	keys := domain.DeriveKeys(rawKey)
	logger.Log.Info("Derived keys",
		zap.String("source_key", keys.SourceKey),
		zap.String("output_key_prefix", keys.OutputKeyPrefix),
		zap.String("group_key", keys.GroupKey),
	)

	job := domain.BuildJobSpec(keys, s.PipelineID, s.Presets)
	handle, err := s.Submitter.Submit(ctx, job)
	if err != nil {
		var submitErr *domain.SubmitError
		if !errors.As(err, &submitErr) {
			err = &domain.SubmitError{Backend: "unknown", Err: err}
		}
		logger.Log.Error("Error creating transcoding job",
			zap.String("source_key", keys.SourceKey),
			zap.Error(err),
		)
		return "", err
	}
	logger.Log.Info("Transcoding job created",
		zap.String("job_id", handle.ID),
		zap.String("backend", handle.Backend),
	)

	if err := s.recordStarted(ctx, keys.GroupKey); err != nil {
		logger.Log.Error("Error writing progress marker, transcoding job already submitted",
			zap.String("job_id", handle.ID),
			zap.String("group_key", keys.GroupKey),
			zap.Error(err),
		)
		return "", err
	}

	return domain.SuccessAck, nil
}

func (s *transcodeUseCase) recordStarted(ctx context.Context, groupKey string) error {
	path := domain.MarkerPath(groupKey)
	if groupKey == "" {
		return &domain.WriteError{Path: path, Err: domain.ErrEmptyGroupKey}
	}

	logger.Log.Info("Adding video entry", zap.String("path", path))
	if err := s.MarkerRepo.SetTranscoding(ctx, groupKey); err != nil {
		var writeErr *domain.WriteError
		if !errors.As(err, &writeErr) {
			err = &domain.WriteError{Path: path, Err: err}
		}
		return err
	}
	return nil
}
