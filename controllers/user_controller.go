package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zuevus/mud-orders/logger"
	"github.com/zuevus/mud-orders/middleware"
	"github.com/zuevus/mud-orders/rpc"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreateMyProfile handles POST /api/v1/users/me - creates the caller's profile
// from Auth0 userinfo. The role comes from the token's role claim and
// defaults to User.
func CreateMyProfile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	accessToken, err := middleware.GetAccessToken(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "MISSING_TOKEN", "Access token not found")
		return
	}

	if userInfoProvider == nil {
		respondError(c, http.StatusServiceUnavailable, "AUTH0_UNAVAILABLE", "Identity provider is not configured")
		return
	}

	ctx := c.Request.Context()
	_, err = userClient.GetUserProfile(ctx, &rpc.GetUserRequest{UserID: userID})
	if err == nil {
		respondError(c, http.StatusConflict, "USER_EXISTS", "A profile for this user already exists")
		return
	}
	if status.Code(err) != codes.NotFound {
		respondRPCError(c, err)
		return
	}

	userInfo, err := userInfoProvider.GetUserInfo(ctx, accessToken)
	if err != nil {
		logger.Warn("Failed to fetch user info", zap.String("user_id", userID), zap.Error(err))
		respondError(c, http.StatusBadGateway, "AUTH0_ERROR", "Failed to fetch user information from Auth0")
		return
	}

	if userInfo.Email == "" {
		respondError(c, http.StatusBadRequest, "MISSING_EMAIL", "Email not provided by Auth0")
		return
	}
	if userInfo.Name == "" {
		respondError(c, http.StatusBadRequest, "MISSING_NAME", "Name not provided by Auth0")
		return
	}

	role, ok := rpc.ParseUserRole(middleware.GetRole(c))
	if !ok {
		role = rpc.UserRoleUser
	}

	profile, err := userClient.CreateUserProfile(ctx, &rpc.CreateUserRequest{
		UserID:   userID,
		UserName: userInfo.Name,
		Email:    userInfo.Email,
		Role:     role,
	})
	if err != nil {
		respondRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    userDTO(profile),
	})
}

// GetMyProfile handles GET /api/v1/users/me
func GetMyProfile(c *gin.Context) {
	profile := currentProfile(c)
	if profile == nil {
		respondUnauthorized(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userDTO(profile),
	})
}

// GetUsers handles GET /api/v1/users?role= - Admin only. role=User lists
// Users; role=Admin or no role lists every profile.
func GetUsers(c *gin.Context) {
	filter := rpc.UserRoleAdmin
	if name := c.Query("role"); name != "" {
		role, ok := rpc.ParseUserRole(name)
		if !ok {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("Unknown role %q", name))
			return
		}
		filter = role
	}

	resp, err := userClient.GetUsers(c.Request.Context(), &rpc.GetUsersRequest{FilterRole: filter})
	if err != nil {
		respondRPCError(c, err)
		return
	}

	users := userDTOs(resp.Users)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}

// GetUser handles GET /api/v1/users/:id - Admin only
func GetUser(c *gin.Context) {
	profile, err := userClient.GetUserProfile(c.Request.Context(), &rpc.GetUserRequest{UserID: c.Param("id")})
	if err != nil {
		respondRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userDTO(profile),
	})
}

// UpdateUser handles PUT /api/v1/users/:id - Admin only
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	role, ok := rpc.ParseUserRole(req.Role)
	if !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("Unknown role %q", req.Role))
		return
	}

	profile, err := userClient.UpdateUserProfile(c.Request.Context(), &rpc.UpdateUserRequest{
		UserID:   c.Param("id"),
		UserName: req.UserName,
		Email:    req.Email,
		Role:     role,
	})
	if err != nil {
		respondRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userDTO(profile),
	})
}

// DeleteUser handles DELETE /api/v1/users/:id - Admin only
func DeleteUser(c *gin.Context) {
	if _, err := userClient.DeleteUserProfile(c.Request.Context(), &rpc.DeleteUserRequest{UserID: c.Param("id")}); err != nil {
		respondRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User profile deleted",
	})
}
