package testutil

import (
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/zuevus/mud-orders/middleware"
)

// TestIssuer is the issuer of mock tokens
const TestIssuer = "https://test.auth0.com/"

// MockValidatedClaims creates a mock ValidatedClaims for testing
func MockValidatedClaims(subject, role string) *validator.ValidatedClaims {
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Issuer:  TestIssuer,
			Subject: subject,
		},
		CustomClaims: &middleware.CustomClaims{
			Role: role,
		},
	}
}

// SetMockAuthContext sets up the context exactly as EnsureValidToken does
func SetMockAuthContext(c *gin.Context, userID, role string) {
	c.Set(middleware.UserIDKey, userID)
	c.Set(middleware.ValidatedClaimsKey, MockValidatedClaims(userID, role))
	c.Set(middleware.AccessTokenKey, "test-token-"+userID)
}

// MockAuthMiddleware authenticates every request as the user named in the
// X-Test-User header, with the role claim in X-Test-Role. Requests without
// the header are rejected with 401.
func MockAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-Test-User")
		if userID == "" {
			c.AbortWithStatusJSON(401, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TOKEN",
					"message": "Failed to validate JWT.",
				},
			})
			return
		}
		SetMockAuthContext(c, userID, c.GetHeader("X-Test-Role"))
		c.Next()
	}
}
