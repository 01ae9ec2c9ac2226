package config

import (
	"fmt"
	"strings"

	"github.com/zuevus/mud-orders/logger"
	"github.com/zuevus/mud-orders/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase opens the relational store. PostgreSQL URLs select the
// postgres driver; anything else is treated as a SQLite DSN.
func ConnectDatabase(databaseURL string) error {
	if databaseURL == "" {
		return fmt.Errorf("failed to connect to database: empty database URL")
	}

	dialector, driver := Dialector(databaseURL)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	logger.Info("Database connection established", zap.String("driver", driver))
	return nil
}

// Dialector picks the gorm driver for a database URL
func Dialector(databaseURL string) (gorm.Dialector, string) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgres.Open(databaseURL), "postgres"
	}
	return sqlite.Open(SQLiteDSN(strings.TrimPrefix(databaseURL, "sqlite://"))), "sqlite"
}

// sqliteLockParams make writers wait for the database lock instead of
// failing with SQLITE_BUSY, and take the write lock when a transaction begins.
const sqliteLockParams = "_busy_timeout=5000&_txlock=immediate"

// SQLiteDSN adds the locking parameters to a SQLite DSN. File databases also
// switch to WAL so readers never block the writer. A DSN that already sets a
// busy timeout is returned unchanged.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}

	params := sqliteLockParams
	if !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "mode=memory") {
		params += "&_journal_mode=WAL"
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + params
}

// Migrate creates or updates the Orders and UserProfiles tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
