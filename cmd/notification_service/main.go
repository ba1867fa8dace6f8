package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video_transcode_trigger/internal/transcode/app"
	"video_transcode_trigger/internal/transcode/router"
	"video_transcode_trigger/pkg/config"
	"video_transcode_trigger/pkg/database"
	"video_transcode_trigger/pkg/logger"
	testtool "video_transcode_trigger/pkg/test_tool"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.NotificationService, config.EnvConfig.NotificationServiceLogPath)
	defer logger.Log.Sync()

	cfg, err := config.LoadConfig[config.TranscodeTrigger](config.EnvConfig.NotificationService, config.EnvConfig.NotificationServiceYAMLPath)
	if err != nil {
		logger.Log.Fatal("Load config failed", zap.Error(err))
	}
	if !cfg.Webhook.Enabled && !cfg.MinIO.Enabled {
		logger.Log.Fatal("Neither webhook nor minio listener is enabled")
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

	testtool.StartPprof()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backends, err := app.NewBackends(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Unable to create backends", zap.Error(err))
	}
	defer backends.Close()

	usecase := app.NewTranscodeUseCase(backends.Submitter, backends.Markers, cfg.Submitter.PipelineID, app.PresetsFromConfig(cfg.Presets))

	// 1. MinIO bucket notification
	if cfg.MinIO.Enabled {
		minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
			Endpoint:   fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
			User:       cfg.MinIO.User,
			Password:   cfg.MinIO.Password,
			BucketName: cfg.MinIO.BucketName,
			UseSSL:     cfg.MinIO.UseSSL,

			RetryCount:    cfg.MinIO.RetryCount,
			RetryInterval: time.Duration(cfg.MinIO.RetryInterval) * time.Second,
		})
		if err != nil {
			logger.Log.Fatal("Unable to connect to minio after retries",
				zap.String("host", cfg.MinIO.Host),
				zap.Error(err),
			)
		}

		listener := app.NewBucketListener(minioClient, usecase, cfg.MinIO.Prefix, cfg.MinIO.Suffix)
		go func() {
			if err := listener.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Log.Error("Bucket listener exited", zap.Error(err))
			}
		}()
	}

	// 2. webhook
	if !cfg.Webhook.Enabled {
		<-ctx.Done()
		return
	}

	r := fiber.New()
	r.Use(fiber_log.New())
	router.RegisterRoutes(r, &app.WebhookHandler{Usecase: usecase}, []byte(cfg.Webhook.Secret))

	go func() {
		<-ctx.Done()
		if err := r.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Log.Warn("Server shutdown", zap.Error(err))
		}
	}()

	logger.Log.Info(fmt.Sprintf("NotificationService listening on : %s", cfg.Port))
	if err := r.Listen(cfg.IP + ":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
