package controllers

import (
	"time"

	"github.com/zuevus/mud-orders/rpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CreateOrderRequest represents the request body for creating an order.
// Field rules are enforced by the order backend.
type CreateOrderRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type" binding:"required"`
	Price       float64    `json:"price"`
	Deadline    *time.Time `json:"deadline"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
}

// UpdateOrderRequest represents the request body for replacing an order's
// editable fields. An omitted deadline keeps the current one.
type UpdateOrderRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type" binding:"required"`
	Status      string     `json:"status" binding:"required"`
	Price       float64    `json:"price"`
	Deadline    *time.Time `json:"deadline"`
}

// UpdateUserRequest represents the request body for updating a profile
type UpdateUserRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role" binding:"required"`
}

// OrderDTO is the HTTP representation of an order
type OrderDTO struct {
	ID              int32     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Price           float64   `json:"price"`
	CreatedDate     time.Time `json:"created_date"`
	Deadline        time.Time `json:"deadline"`
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	CreatedByUserID string    `json:"created_by_user_id"`
}

// UserDTO is the HTTP representation of a user profile
type UserDTO struct {
	UserID        string     `json:"user_id"`
	UserName      string     `json:"user_name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	CreatedDate   time.Time  `json:"created_date"`
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`
}

func orderDTO(o *rpc.OrderResponse) OrderDTO {
	return OrderDTO{
		ID:              o.ID,
		Title:           o.Title,
		Description:     o.Description,
		Type:            o.Type.String(),
		Status:          o.Status.String(),
		Price:           o.Price,
		CreatedDate:     o.CreatedDate.AsTime(),
		Deadline:        o.Deadline.AsTime(),
		ClientName:      o.ClientName,
		ClientEmail:     o.ClientEmail,
		CreatedByUserID: o.UserID,
	}
}

func orderDTOs(orders []*rpc.OrderResponse) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderDTO(o))
	}
	return out
}

func userDTO(u *rpc.UserResponse) UserDTO {
	dto := UserDTO{
		UserID:      u.UserID,
		UserName:    u.UserName,
		Email:       u.Email,
		Role:        u.Role.String(),
		CreatedDate: u.CreatedDate.AsTime(),
	}
	if u.LastLoginDate != nil {
		t := u.LastLoginDate.AsTime()
		dto.LastLoginDate = &t
	}
	return dto
}

func userDTOs(users []*rpc.UserResponse) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, userDTO(u))
	}
	return out
}

func timestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
