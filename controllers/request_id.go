package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zuevus/mud-orders/rpc"
)

// RequestIDHeader is the HTTP header carrying the request id
const RequestIDHeader = "X-Request-ID"

// RequestID takes the caller's X-Request-ID, or generates one, echoes it in
// the response and stores it in the request context so backend calls made
// for this request carry the same id.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(rpc.ContextWithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}
