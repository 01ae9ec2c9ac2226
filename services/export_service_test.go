package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuevus/mud-orders/models"
)

func TestExportOrders(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db, "First", "user-1")
	seedOrder(t, db, "Second", "user-2")

	storage := NewMockS3Service()
	svc := NewExportService(NewOrderService(db), storage)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC) }

	export, err := svc.ExportOrders(context.Background(), "admin-seed-id")
	require.NoError(t, err)

	assert.Equal(t, 2, export.OrderCount)
	assert.True(t, strings.HasPrefix(export.Key, "exports/orders/20261018T093000Z_"))
	assert.True(t, strings.HasSuffix(export.Key, ".json"))
	assert.Contains(t, export.URL, export.Key)

	content, contentType, ok := storage.Object(export.Key)
	require.True(t, ok, "Export should be stored")
	assert.Equal(t, "application/json", contentType)

	var doc struct {
		RequestedBy string         `json:"requested_by"`
		Orders      []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(content, &doc))
	assert.Equal(t, "admin-seed-id", doc.RequestedBy)
	assert.Len(t, doc.Orders, 2, "Export should include orders of every user")
}

func TestExportOrders_StorageFailure(t *testing.T) {
	storage := NewMockS3Service()
	storage.FailPut = true
	svc := NewExportService(NewOrderService(setupTestDB(t)), storage)

	export, err := svc.ExportOrders(context.Background(), "admin")
	assert.Nil(t, export)
	assert.Error(t, err)
	assert.Zero(t, storage.Count())
}

func TestExportOrders_PresignFailureRemovesObject(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db, "First", "user-1")

	storage := NewMockS3Service()
	storage.FailPresign = true
	svc := NewExportService(NewOrderService(db), storage)

	export, err := svc.ExportOrders(context.Background(), "admin")
	assert.Nil(t, export)
	assert.Error(t, err)
	assert.Zero(t, storage.Count(), "Unsigned export should be deleted")
}

func TestExportServiceSingleton(t *testing.T) {
	original := GetExportService()
	defer SetExportService(original)

	svc := InitExportService(NewOrderService(setupTestDB(t)), NewMockS3Service())
	assert.Same(t, svc, GetExportService())

	SetExportService(nil)
	assert.Nil(t, GetExportService())
}
