package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zuevus/mud-orders/logger"
	"github.com/zuevus/mud-orders/models"
	"go.uber.org/zap"
)

// OrderExport describes an uploaded snapshot of the order table
type OrderExport struct {
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	OrderCount int       `json:"order_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type exportDocument struct {
	ExportedAt  time.Time      `json:"exported_at"`
	RequestedBy string         `json:"requested_by"`
	Orders      []models.Order `json:"orders"`
}

// ExportService writes order snapshots to object storage
type ExportService struct {
	orders  OrderService
	storage S3Interface
	now     func() time.Time
}

var exportServiceInstance *ExportService

// InitExportService initializes the export service with its storage backend
func InitExportService(orders OrderService, storage S3Interface) *ExportService {
	exportServiceInstance = NewExportService(orders, storage)
	return exportServiceInstance
}

// GetExportService returns the initialized export service, or nil when
// object storage is not configured
func GetExportService() *ExportService {
	return exportServiceInstance
}

// SetExportService sets the export service instance (primarily for testing)
func SetExportService(service *ExportService) {
	exportServiceInstance = service
}

// NewExportService creates an export service
func NewExportService(orders OrderService, storage S3Interface) *ExportService {
	return &ExportService{orders: orders, storage: storage, now: utcNow}
}

// ExportOrders uploads every order as one JSON document and returns a
// presigned link to it
func (s *ExportService) ExportOrders(ctx context.Context, requestedBy string) (*OrderExport, error) {
	orders, err := s.orders.GetOrders(ctx, requestedBy, models.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	now := s.now()
	content, err := json.Marshal(exportDocument{
		ExportedAt:  now,
		RequestedBy: requestedBy,
		Orders:      orders,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	key := fmt.Sprintf("exports/orders/%s_%s.json", now.Format("20060102T150405Z"), uuid.NewString())
	if err := s.storage.PutObject(ctx, key, content, "application/json"); err != nil {
		return nil, fmt.Errorf("failed to store export: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, key)
	if err != nil {
		if delErr := s.storage.DeleteObject(ctx, key); delErr != nil {
			logger.Warn("Failed to remove unsigned export", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to sign export: %w", err)
	}

	logger.Info("Orders exported", zap.String("key", key), zap.Int("orders", len(orders)), zap.String("requested_by", requestedBy))
	return &OrderExport{Key: key, URL: url, OrderCount: len(orders), CreatedAt: now}, nil
}
