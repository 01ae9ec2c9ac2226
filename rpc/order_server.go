package rpc

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zuevus/mud-orders/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// OrderServer serves mud.Orders on top of a services.OrderService
type OrderServer struct {
	svc services.OrderService
}

// NewOrderServer wraps svc for registration with RegisterOrdersServer
func NewOrderServer(svc services.OrderService) *OrderServer {
	return &OrderServer{svc: svc}
}

// CreateOrder reports the field rules before wire-level problems, so an
// empty title wins over an unknown type or a malformed deadline.
func (s *OrderServer) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	deadline, deadlineErr := deadlineFromWire(req.Deadline)
	in := services.CreateOrderInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Deadline:    deadline,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		UserID:      req.UserID,
	}
	if deadlineErr != nil {
		// present but unusable; it still satisfies the required check
		in.Deadline = &time.Time{}
	}
	if err := services.ValidateCreateOrder(in); err != nil {
		return nil, toStatus(err)
	}
	if deadlineErr != nil {
		return nil, deadlineErr
	}

	orderType, ok := req.Type.ToModel()
	if !ok {
		return nil, invalidArgumentf("Unknown order type %d", req.Type)
	}
	in.Type = orderType
	in.Deadline = deadline

	order, err := s.svc.CreateOrder(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return OrderToResponse(order), nil
}

func (s *OrderServer) GetOrders(ctx context.Context, req *GetOrdersRequest) (*OrdersResponse, error) {
	role, ok := req.UserRole.ToModel()
	if !ok {
		return nil, invalidArgumentf("Unknown user role %d", req.UserRole)
	}

	orders, err := s.svc.GetOrders(ctx, req.UserID, role)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &OrdersResponse{Orders: make([]*OrderResponse, 0, len(orders))}
	for i := range orders {
		resp.Orders = append(resp.Orders, OrderToResponse(&orders[i]))
	}
	return resp, nil
}

func (s *OrderServer) GetOrderByID(ctx context.Context, req *GetOrderByIDRequest) (*OrderResponse, error) {
	order, err := s.svc.GetOrderByID(ctx, int(req.ID))
	if err != nil {
		return nil, toStatus(err)
	}
	return OrderToResponse(order), nil
}

func (s *OrderServer) UpdateOrder(ctx context.Context, req *UpdateOrderRequest) (*OrderResponse, error) {
	orderType, ok := req.Type.ToModel()
	if !ok {
		return nil, invalidArgumentf("Unknown order type %d", req.Type)
	}
	orderStatus, ok := req.Status.ToModel()
	if !ok {
		return nil, invalidArgumentf("Unknown order status %d", req.Status)
	}
	deadline, err := deadlineFromWire(req.Deadline)
	if err != nil {
		return nil, err
	}

	order, err := s.svc.UpdateOrder(ctx, services.UpdateOrderInput{
		ID:          int(req.ID),
		Title:       req.Title,
		Description: req.Description,
		Type:        orderType,
		Status:      orderStatus,
		Price:       decimal.NewFromFloat(req.Price),
		Deadline:    deadline,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return OrderToResponse(order), nil
}

func (s *OrderServer) DeleteOrder(ctx context.Context, req *DeleteOrderRequest) (*DeleteOrderResponse, error) {
	ok, err := s.svc.DeleteOrder(ctx, int(req.ID))
	if err != nil {
		return nil, toStatus(err)
	}
	return &DeleteOrderResponse{Success: ok}, nil
}

// deadlineFromWire returns nil for an absent timestamp
func deadlineFromWire(ts *timestamppb.Timestamp) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	if err := ts.CheckValid(); err != nil {
		return nil, invalidArgumentf("Invalid deadline: %v", err)
	}
	t := ts.AsTime()
	return &t, nil
}
