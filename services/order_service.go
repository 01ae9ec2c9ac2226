package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zuevus/mud-orders/logger"
	"github.com/zuevus/mud-orders/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateOrderInput carries the client supplied fields of a new order
type CreateOrderInput struct {
	Title       string
	Description string
	Type        models.OrderType
	Price       decimal.Decimal
	Deadline    *time.Time
	ClientName  string
	ClientEmail string
	UserID      string
}

// UpdateOrderInput carries the mutable fields of an order. A nil Deadline
// keeps the stored one.
type UpdateOrderInput struct {
	ID          int
	Title       string
	Description string
	Type        models.OrderType
	Status      models.OrderStatus
	Price       decimal.Decimal
	Deadline    *time.Time
}

// OrderService validates and persists orders
type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrderByID(ctx context.Context, id int) (*models.Order, error)
	GetOrders(ctx context.Context, userID string, role models.UserRole) ([]models.Order, error)
	UpdateOrder(ctx context.Context, in UpdateOrderInput) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int) (bool, error)
}

type orderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOrderService creates an OrderService backed by db
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db, now: utcNow}
}

// ValidateCreateOrder applies the new-order rules in order: title, client
// name, client email, deadline, then a positive price. The first failure is
// returned as an InvalidArgument error.
func ValidateCreateOrder(in CreateOrderInput) error {
	if in.Title == "" {
		return invalidArgument("Title is required")
	}
	if in.ClientName == "" {
		return invalidArgument("Client name is required")
	}
	if in.ClientEmail == "" {
		return invalidArgument("Client email is required")
	}
	if in.Deadline == nil {
		return invalidArgument("Deadline is required")
	}
	if in.Price.Sign() <= 0 {
		return invalidArgument("Price must be greater than 0")
	}
	return nil
}

// CreateOrder stores a new order. Status is always New.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if err := ValidateCreateOrder(in); err != nil {
		return nil, err
	}

	order := models.Order{
		Title:           in.Title,
		Description:     in.Description,
		Type:            in.Type,
		Status:          models.OrderStatusNew,
		Price:           in.Price,
		CreatedDate:     s.now(),
		Deadline:        in.Deadline.UTC(),
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		CreatedByUserID: in.UserID,
	}

	if err := session(ctx, s.db).Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logger.Info("Order created", zap.Int("order_id", order.ID), zap.String("user_id", order.CreatedByUserID))
	return &order, nil
}

// GetOrderByID returns the order or a NotFound error
func (s *orderService) GetOrderByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := findOrder(session(ctx, s.db), id, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrders returns the orders visible to a role. A User sees only the
// orders they created; an Admin sees every order.
func (s *orderService) GetOrders(ctx context.Context, userID string, role models.UserRole) ([]models.Order, error) {
	orders := []models.Order{}
	query := session(ctx, s.db).Model(&models.Order{})
	if role == models.UserRoleUser {
		query = query.Where(map[string]interface{}{"CreatedByUserId": userID})
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrder overwrites title, description, type, status, price and
// deadline. Client details, owner and CreatedDate never change. Concurrent
// updates of one order each complete; the last write wins.
func (s *orderService) UpdateOrder(ctx context.Context, in UpdateOrderInput) (*models.Order, error) {
	db := session(ctx, s.db)

	var order models.Order
	if err := findOrder(db, in.ID, &order); err != nil {
		return nil, err
	}

	order.Title = in.Title
	order.Description = in.Description
	order.Type = in.Type
	order.Status = in.Status
	order.Price = in.Price
	if in.Deadline != nil {
		order.Deadline = in.Deadline.UTC()
	}

	result := db.Model(&order).
		Select("Title", "Description", "Type", "Status", "Price", "Deadline").
		Updates(&order)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update order %d: %w", in.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, orderNotFound(in.ID)
	}
	return &order, nil
}

// DeleteOrder removes the order. It returns true on success.
func (s *orderService) DeleteOrder(ctx context.Context, id int) (bool, error) {
	result := session(ctx, s.db).Delete(&models.Order{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete order %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, orderNotFound(id)
	}

	logger.Info("Order deleted", zap.Int("order_id", id))
	return true, nil
}

func orderNotFound(id int) error {
	return notFound(fmt.Sprintf("Order with ID %d not found", id))
}

func findOrder(tx *gorm.DB, id int, order *models.Order) error {
	err := tx.First(order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return orderNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return nil
}
