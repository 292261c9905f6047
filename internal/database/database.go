package database

import (
	"strings"

	"github.com/sajeel/daily-tracker/internal/config"
	"github.com/sajeel/daily-tracker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	db, err := Open(cfg.DatabaseURL, gormLogLevel(cfg.LogLevel))
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// Open connects to PostgreSQL if url starts with postgres, otherwise to the
// SQLite file or DSN it names.
func Open(url string, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(url, "postgres") {
		dialector = postgres.Open(url)
	} else {
		dialector = sqlite.Open(sqliteDSN(url))
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
}

// Migrate creates or updates the tracker tables on db.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tracker{},
		&models.TrackerGoal{},
	)
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SQLite leaves foreign keys off per connection unless asked; goal rows rely
// on ON DELETE CASCADE.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	default:
		return logger.Warn
	}
}
