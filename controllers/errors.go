package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zuevus/mud-orders/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func respondError(c *gin.Context, httpStatus int, code, message string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondRPCError translates a backend status into the HTTP error envelope.
// Messages of Internal and unknown failures are not passed on.
func respondRPCError(c *gin.Context, err error) {
	st := status.Convert(err)
	switch st.Code() {
	case codes.InvalidArgument:
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", st.Message())
	case codes.NotFound:
		respondError(c, http.StatusNotFound, "NOT_FOUND", st.Message())
	case codes.PermissionDenied:
		respondError(c, http.StatusForbidden, "FORBIDDEN", st.Message())
	case codes.Unauthenticated:
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		logger.Warn("Backend unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "The order backend is unavailable")
	default:
		logger.Error("Backend call failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}

func respondUnauthorized(c *gin.Context) {
	respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
}

func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}
