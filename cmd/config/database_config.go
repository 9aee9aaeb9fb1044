package config

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"recipe-catalog/internal/utils"
)

func DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
		utils.GetConfig("DB_SSLMODE"),
	)
}

func ConnectDB(log *zap.Logger) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if utils.GetConfig("APP_ENV") == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(DatabaseDSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	if n := utils.GetConfigInt("DB_MAX_OPEN_CONNS", 0); n > 0 {
		sqlDB.SetMaxOpenConns(n)
	}
	if n := utils.GetConfigInt("DB_MAX_IDLE_CONNS", 0); n > 0 {
		sqlDB.SetMaxIdleConns(n)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("database connected",
		zap.String("host", utils.GetConfig("DB_HOST")),
		zap.String("database", utils.GetConfig("DB_NAME")),
	)
	return db, nil
}
