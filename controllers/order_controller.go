package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zuevus/mud-orders/middleware"
	"github.com/zuevus/mud-orders/rpc"
	"github.com/zuevus/mud-orders/services"
)

// CreateOrder handles POST /api/v1/orders - creates an order owned by the caller
func CreateOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	orderType, ok := rpc.ParseOrderType(req.Type)
	if !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("Unknown order type %q", req.Type))
		return
	}

	order, err := orderClient.CreateOrder(c.Request.Context(), &rpc.CreateOrderRequest{
		Title:       req.Title,
		Description: req.Description,
		Type:        orderType,
		Price:       req.Price,
		Deadline:    timestampOrNil(req.Deadline),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		UserID:      userID,
	})
	if err != nil {
		respondRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    orderDTO(order),
	})
}

// GetOrders handles GET /api/v1/orders - Admins see every order, Users their own
func GetOrders(c *gin.Context) {
	profile := currentProfile(c)
	if profile == nil {
		respondUnauthorized(c)
		return
	}

	resp, err := orderClient.GetOrders(c.Request.Context(), &rpc.GetOrdersRequest{
		UserID:   profile.UserID,
		UserRole: profile.Role,
	})
	if err != nil {
		respondRPCError(c, err)
		return
	}

	orders := orderDTOs(resp.Orders)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
		"count":   len(orders),
	})
}

// GetOrder handles GET /api/v1/orders/:id
func GetOrder(c *gin.Context) {
	order, ok := loadAccessibleOrder(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orderDTO(order),
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id
func UpdateOrder(c *gin.Context) {
	order, ok := loadAccessibleOrder(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	orderType, ok := rpc.ParseOrderType(req.Type)
	if !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("Unknown order type %q", req.Type))
		return
	}
	orderStatus, ok := rpc.ParseOrderStatus(req.Status)
	if !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("Unknown order status %q", req.Status))
		return
	}

	updated, err := orderClient.UpdateOrder(c.Request.Context(), &rpc.UpdateOrderRequest{
		ID:          order.ID,
		Title:       req.Title,
		Description: req.Description,
		Type:        orderType,
		Status:      orderStatus,
		Price:       req.Price,
		Deadline:    timestampOrNil(req.Deadline),
	})
	if err != nil {
		respondRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orderDTO(updated),
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id
func DeleteOrder(c *gin.Context) {
	order, ok := loadAccessibleOrder(c)
	if !ok {
		return
	}

	if _, err := orderClient.DeleteOrder(c.Request.Context(), &rpc.DeleteOrderRequest{ID: order.ID}); err != nil {
		respondRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted",
	})
}

// ExportOrders handles POST /api/v1/orders/export - Admin only
func ExportOrders(c *gin.Context) {
	exportService := services.GetExportService()
	if exportService == nil {
		respondError(c, http.StatusServiceUnavailable, "EXPORT_UNAVAILABLE", "Object storage is not configured")
		return
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	export, err := exportService.ExportOrders(c.Request.Context(), userID)
	if err != nil {
		respondRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    export,
	})
}

// loadAccessibleOrder fetches the order named by :id. A User may only reach
// orders they created. It writes the error response itself.
func loadAccessibleOrder(c *gin.Context) (*rpc.OrderResponse, bool) {
	profile := currentProfile(c)
	if profile == nil {
		respondUnauthorized(c)
		return nil, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Order ID must be an integer")
		return nil, false
	}

	order, err := orderClient.GetOrderByID(c.Request.Context(), &rpc.GetOrderByIDRequest{ID: int32(id)})
	if err != nil {
		respondRPCError(c, err)
		return nil, false
	}

	if profile.Role != rpc.UserRoleAdmin && order.UserID != profile.UserID {
		respondError(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this order")
		return nil, false
	}
	return order, true
}
