package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/zuevus/mud-orders/middleware"
	"github.com/zuevus/mud-orders/models"
)

// RegisterRoutes mounts the order and user endpoints on v1. auth
// authenticates the caller.
func RegisterRoutes(v1 *gin.RouterGroup, auth gin.HandlerFunc) {
	adminOnly := middleware.RequireRole(string(models.UserRoleAdmin))

	users := v1.Group("/users", auth)
	{
		users.POST("/me", CreateMyProfile)
		users.GET("/me", LoadProfile(), GetMyProfile)

		admin := users.Group("", LoadProfile(), adminOnly)
		admin.GET("", GetUsers)
		admin.GET("/:id", GetUser)
		admin.PUT("/:id", UpdateUser)
		admin.DELETE("/:id", DeleteUser)
	}

	orders := v1.Group("/orders", auth, LoadProfile())
	{
		orders.POST("", CreateOrder)
		orders.GET("", GetOrders)
		orders.POST("/export", adminOnly, ExportOrders)
		orders.GET("/:id", GetOrder)
		orders.PUT("/:id", UpdateOrder)
		orders.DELETE("/:id", DeleteOrder)
	}
}
