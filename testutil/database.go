package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/zuevus/mud-orders/config"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// OpenTestDB opens a private migrated in-memory database that is closed when
// the test ends. Shared cache keeps every pooled connection on the same
// database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return openTestDB(t, fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbCounter.Add(1)))
}

// OpenFileTestDB opens a migrated SQLite file in the test's temp dir with the
// same locking settings as the server. Use it when connections must contend
// for the database lock the way they do in production.
func OpenFileTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "mud.db"))
}

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	dialector, _ := config.Dialector(dsn)
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
