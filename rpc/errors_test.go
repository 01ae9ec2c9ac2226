package rpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zuevus/mud-orders/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "invalid argument",
			err:      &services.Error{Code: services.CodeInvalidArgument, Message: "Title is required"},
			wantCode: codes.InvalidArgument,
			wantMsg:  "Title is required",
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("lookup: %w", &services.Error{Code: services.CodeNotFound, Message: "Order with ID 9 not found"}),
			wantCode: codes.NotFound,
			wantMsg:  "Order with ID 9 not found",
		},
		{
			name:     "context canceled",
			err:      fmt.Errorf("failed to list orders: %w", context.Canceled),
			wantCode: codes.Canceled,
		},
		{
			name:     "existing status passes through",
			err:      status.Error(codes.PermissionDenied, "nope"),
			wantCode: codes.PermissionDenied,
			wantMsg:  "nope",
		},
		{
			name:     "persistence error is hidden",
			err:      errors.New("UNIQUE constraint failed: UserProfiles.UserId"),
			wantCode: codes.Internal,
			wantMsg:  "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := status.Convert(toStatus(tt.err))
			assert.Equal(t, tt.wantCode, st.Code())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, st.Message())
			}
		})
	}

	assert.NoError(t, toStatus(nil))
}
