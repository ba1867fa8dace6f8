package errprocess

import (
	"errors"
	"fmt"

	"video_transcode_trigger/pkg/logger"

	"go.uber.org/zap"
)

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}

// Wrap log msg with its cause and return an error wrapping the cause
func Wrap(msg string, err error, fields ...zap.Field) error {
	logger.Log.Error(msg, append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", msg, err)
}
