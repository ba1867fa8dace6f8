package main

import (
	"context"
	"time"

	"video_transcode_trigger/internal/transcode/app"
	"video_transcode_trigger/pkg/config"
	"video_transcode_trigger/pkg/logger"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

func main() {
	// Lambda 檔案系統唯讀，log 只輸出到 stdout
	logger.Log = logger.Initialize(config.EnvConfig.TranscodeTrigger, "")
	defer logger.Log.Sync()

	cfg, err := config.LoadConfig[config.TranscodeTrigger](config.EnvConfig.TranscodeTrigger, config.EnvConfig.TranscodeTriggerYAMLPath)
	if err != nil {
		logger.Log.Fatal("Load config failed", zap.Error(err))
	}

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Log.Warn("Sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	// client 只在 cold start 建立一次
	backends, err := app.NewBackends(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("Unable to create backends", zap.Error(err))
	}
	defer backends.Close()

	usecase := app.NewTranscodeUseCase(backends.Submitter, backends.Markers, cfg.Submitter.PipelineID, app.PresetsFromConfig(cfg.Presets))
	handler := &app.LambdaHandler{Usecase: usecase}

	lambda.Start(handler.Handle)
}
