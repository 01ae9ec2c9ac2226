package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// session returns a fresh gorm session bound to ctx. Every statement commits
// on its own, so no call holds a lock across a read and a later write.
func session(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx)
}

// utcNow is the clock used for CreatedDate
func utcNow() time.Time {
	return time.Now().UTC()
}
