package config

import (
	"log"

	"journal-portal-api/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *Config) {
	var err error

	// In production, suppress SQL logs unless explicitly re-enabled via
	// DEBUG_SQL=true.
	logLevel := logger.Info
	if cfg.Environment == "production" && !cfg.DebugSQL {
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
		// Duplicate-key violations surface as gorm.ErrDuplicatedKey so the
		// unique index on users.email, not the application-level pre-check,
		// is the authority for email uniqueness.
		TranslateError: true,
	}

	DB, err = gorm.Open(mysql.Open(cfg.DSN()), gormConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Paper{},
		&models.ReviewerApplication{},
	); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Database connected successfully")
}
