package services

import (
	"context"
	"fmt"
	"sync"
)

// MockS3Service is an in-memory S3Interface for tests
type MockS3Service struct {
	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string

	// FailPut makes PutObject return an error
	FailPut bool
	// FailPresign makes GetPresignedURL return an error
	FailPresign bool
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

// PutObject stores content in memory
func (m *MockS3Service) PutObject(_ context.Context, key string, content []byte, contentType string) error {
	if m.FailPut {
		return fmt.Errorf("mock S3 upload failure")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), content...)
	m.types[key] = contentType
	return nil
}

// GetPresignedURL returns a fake URL for a stored object
func (m *MockS3Service) GetPresignedURL(_ context.Context, key string) (string, error) {
	if m.FailPresign {
		return "", fmt.Errorf("mock S3 presign failure")
	}
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.objects[key]
	m.mu.RUnlock()
	if !exists {
		return "", fmt.Errorf("file not found in mock S3: %s", key)
	}

	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", key), nil
}

// DeleteObject removes a stored object
func (m *MockS3Service) DeleteObject(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	delete(m.types, key)
	return nil
}

// Object returns a stored object and its content type
func (m *MockS3Service) Object(key string) ([]byte, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.objects[key]
	return content, m.types[key], ok
}

// Count returns the number of stored objects
func (m *MockS3Service) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
