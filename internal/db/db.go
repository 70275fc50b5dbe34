package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shamsy/home-services-api/internal/config"
	"github.com/shamsy/home-services-api/internal/logger"
	"github.com/shamsy/home-services-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	log := logger.GetLogger()

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// Surfaces unique-constraint races as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Service{},
		&models.ServiceRequest{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
