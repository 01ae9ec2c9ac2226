// Package rpc is the gRPC surface of the Order and User services: wire
// messages, service descriptors, clients and the server-side adapters that
// translate between wire messages and the services package.
package rpc

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// OrderType is the wire enumeration of order kinds
type OrderType int32

const (
	OrderTypeWebsiteDevelopment OrderType = 0
	OrderTypeMobileApp          OrderType = 1
	OrderTypeAPIDevelopment     OrderType = 2
	OrderTypeDatabaseDesign     OrderType = 3
	OrderTypeSystemMaintenance  OrderType = 4
	OrderTypeBugFixing          OrderType = 5
	OrderTypeConsultation       OrderType = 6
)

// OrderStatus is the wire enumeration of order states
type OrderStatus int32

const (
	OrderStatusNew        OrderStatus = 0
	OrderStatusInProgress OrderStatus = 1
	OrderStatusCompleted  OrderStatus = 2
	OrderStatusCancelled  OrderStatus = 3
)

// UserRole is the wire enumeration of roles
type UserRole int32

const (
	UserRoleAdmin UserRole = 0
	UserRoleUser  UserRole = 1
)

type CreateOrderRequest struct {
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        OrderType              `json:"type"`
	Price       float64                `json:"price,omitempty"`
	Deadline    *timestamppb.Timestamp `json:"deadline,omitempty"`
	ClientName  string                 `json:"clientName,omitempty"`
	ClientEmail string                 `json:"clientEmail,omitempty"`
	UserID      string                 `json:"userId,omitempty"`
}

type GetOrdersRequest struct {
	UserID   string   `json:"userId,omitempty"`
	UserRole UserRole `json:"userRole"`
}

type GetOrderByIDRequest struct {
	ID int32 `json:"id"`
}

type UpdateOrderRequest struct {
	ID          int32                  `json:"id"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        OrderType              `json:"type"`
	Status      OrderStatus            `json:"status"`
	Price       float64                `json:"price,omitempty"`
	Deadline    *timestamppb.Timestamp `json:"deadline,omitempty"`
}

type DeleteOrderRequest struct {
	ID int32 `json:"id"`
}

type OrderResponse struct {
	ID          int32                  `json:"id"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        OrderType              `json:"type"`
	Status      OrderStatus            `json:"status"`
	Price       float64                `json:"price,omitempty"`
	CreatedDate *timestamppb.Timestamp `json:"createdDate,omitempty"`
	Deadline    *timestamppb.Timestamp `json:"deadline,omitempty"`
	ClientName  string                 `json:"clientName,omitempty"`
	ClientEmail string                 `json:"clientEmail,omitempty"`
	UserID      string                 `json:"userId,omitempty"`
}

type OrdersResponse struct {
	Orders []*OrderResponse `json:"orders"`
}

type DeleteOrderResponse struct {
	Success bool `json:"success"`
}

type GetUserRequest struct {
	UserID string `json:"userId,omitempty"`
}

type CreateUserRequest struct {
	UserID   string   `json:"userId,omitempty"`
	UserName string   `json:"userName,omitempty"`
	Email    string   `json:"email,omitempty"`
	Role     UserRole `json:"role"`
}

type UpdateUserRequest struct {
	UserID   string   `json:"userId,omitempty"`
	UserName string   `json:"userName,omitempty"`
	Email    string   `json:"email,omitempty"`
	Role     UserRole `json:"role"`
}

type DeleteUserRequest struct {
	UserID string `json:"userId,omitempty"`
}

type GetUsersRequest struct {
	FilterRole UserRole `json:"filterRole"`
}

type UserResponse struct {
	UserID        string                 `json:"userId,omitempty"`
	UserName      string                 `json:"userName,omitempty"`
	Email         string                 `json:"email,omitempty"`
	Role          UserRole               `json:"role"`
	CreatedDate   *timestamppb.Timestamp `json:"createdDate,omitempty"`
	LastLoginDate *timestamppb.Timestamp `json:"lastLoginDate,omitempty"`
}

type UsersResponse struct {
	Users []*UserResponse `json:"users"`
}

type DeleteUserResponse struct {
	Success bool `json:"success"`
}
