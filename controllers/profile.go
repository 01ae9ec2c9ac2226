package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zuevus/mud-orders/middleware"
	"github.com/zuevus/mud-orders/rpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const profileKey = "user_profile"

// LoadProfile fetches the caller's stored profile and records its role for
// RequireRole and the handlers. Callers without a profile get 404.
func LoadProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserID(c)
		if err != nil {
			respondUnauthorized(c)
			c.Abort()
			return
		}

		profile, err := userClient.GetUserProfile(c.Request.Context(), &rpc.GetUserRequest{UserID: userID})
		if status.Code(err) == codes.NotFound {
			respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User profile not found. Please create a profile first.")
			c.Abort()
			return
		}
		if err != nil {
			respondRPCError(c, err)
			c.Abort()
			return
		}

		c.Set(profileKey, profile)
		middleware.SetRole(c, profile.Role.String())
		c.Next()
	}
}

// currentProfile returns the profile stored by LoadProfile
func currentProfile(c *gin.Context) *rpc.UserResponse {
	profile, _ := c.Get(profileKey)
	p, _ := profile.(*rpc.UserResponse)
	return p
}
