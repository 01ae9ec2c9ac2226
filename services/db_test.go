package services

import (
	"testing"

	"github.com/zuevus/mud-orders/testutil"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testutil.RequireTestEnvironment(t)
	return testutil.OpenTestDB(t)
}
