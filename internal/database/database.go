package database

import (
	"strings"

	"github.com/carepoint/carepoint-api/internal/config"
	"github.com/carepoint/carepoint-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	logMode := logger.Warn
	if cfg.AppEnv == "development" {
		logMode = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.PatientProfile{},
		&models.ProviderProfile{},
		&models.AuditLog{},
		&models.WellnessGoal{},
		&models.ProgressEntry{},
		&models.Reminder{},
		&models.HealthTip{},
		&models.HealthArticle{},
		&models.PrivacyPolicy{},
		&models.FAQ{},
	)
}
