package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	original := L()
	t.Cleanup(func() { SetLogger(original) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	return logs
}

func sampleQuery() (string, int64) {
	return `SELECT * FROM "Orders" WHERE "Id" = 1`, 1
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		level     gormlogger.LogLevel
		elapsed   time.Duration
		err       error
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{"query error", gormlogger.Warn, 0, errors.New("database is locked"), zapcore.ErrorLevel, "Database query failed"},
		{"slow query", gormlogger.Warn, time.Second, nil, zapcore.WarnLevel, "Slow database query"},
		{"every query at info", gormlogger.Info, 0, nil, zapcore.DebugLevel, "Database query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)

			NewGormLogger(tt.level).Trace(context.Background(), time.Now().Add(-tt.elapsed), sampleQuery, tt.err)

			entries := logs.AllUntimed()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Equal(t, tt.wantMsg, entries[0].Message)
			assert.Equal(t, "gorm", entries[0].ContextMap()["component"])
			assert.Contains(t, entries[0].ContextMap()["sql"], "Orders")
		})
	}
}

func TestGormLogger_Quiet(t *testing.T) {
	logs := observeLogs(t)
	ctx := context.Background()

	NewGormLogger(gormlogger.Warn).Trace(ctx, time.Now(), sampleQuery, gormlogger.ErrRecordNotFound)
	NewGormLogger(gormlogger.Warn).Trace(ctx, time.Now(), sampleQuery, nil)
	NewGormLogger(gormlogger.Warn).LogMode(gormlogger.Silent).Trace(ctx, time.Now(), sampleQuery, errors.New("boom"))
	NewGormLogger(gormlogger.Error).Warn(ctx, "ignored %d", 1)

	assert.Zero(t, logs.Len())
}

func TestGormLogger_Messages(t *testing.T) {
	logs := observeLogs(t)

	l := NewGormLogger(gormlogger.Info)
	l.Info(context.Background(), "migrating %s", "Orders")
	l.Error(context.Background(), "failed: %v", errors.New("boom"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "migrating Orders", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
