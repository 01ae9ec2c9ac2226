package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRespondRPCError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		code       codes.Code
		wantStatus int
		wantCode   string
	}{
		{codes.InvalidArgument, http.StatusBadRequest, "VALIDATION_ERROR"},
		{codes.NotFound, http.StatusNotFound, "NOT_FOUND"},
		{codes.PermissionDenied, http.StatusForbidden, "FORBIDDEN"},
		{codes.Unauthenticated, http.StatusUnauthorized, "UNAUTHORIZED"},
		{codes.Unavailable, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{codes.Internal, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondRPCError(c, status.Error(tt.code, "secret detail"))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w))
			if tt.wantStatus >= 500 {
				assert.NotContains(t, w.Body.String(), "secret detail")
			}
		})
	}
}
