package config

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chunponglai/tricks-planner/models"
)

// InitDB opens the database named by cfg.DatabaseURL and migrates the
// schema. Postgres DSNs get the postgres driver; anything else is
// treated as a SQLite path, which is also the out-of-the-box default.
func InitDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if isPostgresDSN(cfg.DatabaseURL) {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// An in-memory SQLite database exists per connection; collapse the
	// pool so every session sees the same one.
	if strings.Contains(cfg.DatabaseURL, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Trick{},
		&models.TrainingTemplate{},
		&models.TrainingTemplateItem{},
		&models.Challenge{},
		&models.DailyTrainingPlan{},
		&models.TrainingItem{},
		&models.UserData{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
