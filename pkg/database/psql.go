package database

import (
	"time"

	"video_transcode_trigger/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// NewPGConnection create a new postgresSQL connection through gorm
func NewPGConnection(d Connection) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 1; i <= retry(d.RetryCount); i++ {
		db, err = gorm.Open(postgres.Open(d.ConnectStr), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				dbErr = sqlDB.Ping()
			}
			if dbErr == nil {
				return db, nil
			}
			err = dbErr
		}
		logger.Log.Warn(
			"Failed to connect to postgreSQL database, retrying...",
			zap.Int("attempt", i),
			zap.Error(err),
		)
		if i < retry(d.RetryCount) {
			time.Sleep(d.RetryInterval)
		}
	}

	return nil, err
}
