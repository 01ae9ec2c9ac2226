package rpc

import (
	"github.com/zuevus/mud-orders/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// enumPair ties one wire value to one storage value
type enumPair[W comparable, M comparable] struct {
	wire  W
	model M
}

// enumTable is a bidirectional lookup built from a single list of pairs, so
// the two enumerations can be reordered independently without drifting.
type enumTable[W comparable, M comparable] struct {
	toModel   map[W]M
	fromModel map[M]W
	pairs     []enumPair[W, M]
}

func newEnumTable[W comparable, M comparable](pairs ...enumPair[W, M]) enumTable[W, M] {
	t := enumTable[W, M]{
		toModel:   make(map[W]M, len(pairs)),
		fromModel: make(map[M]W, len(pairs)),
		pairs:     pairs,
	}
	for _, p := range pairs {
		if _, dup := t.toModel[p.wire]; dup {
			panic("rpc: duplicate wire value in enum table")
		}
		if _, dup := t.fromModel[p.model]; dup {
			panic("rpc: duplicate model value in enum table")
		}
		t.toModel[p.wire] = p.model
		t.fromModel[p.model] = p.wire
	}
	return t
}

var orderTypes = newEnumTable(
	enumPair[OrderType, models.OrderType]{OrderTypeWebsiteDevelopment, models.OrderTypeWebsiteDevelopment},
	enumPair[OrderType, models.OrderType]{OrderTypeMobileApp, models.OrderTypeMobileApp},
	enumPair[OrderType, models.OrderType]{OrderTypeAPIDevelopment, models.OrderTypeAPIDevelopment},
	enumPair[OrderType, models.OrderType]{OrderTypeDatabaseDesign, models.OrderTypeDatabaseDesign},
	enumPair[OrderType, models.OrderType]{OrderTypeSystemMaintenance, models.OrderTypeSystemMaintenance},
	enumPair[OrderType, models.OrderType]{OrderTypeBugFixing, models.OrderTypeBugFixing},
	enumPair[OrderType, models.OrderType]{OrderTypeConsultation, models.OrderTypeConsultation},
)

var orderStatuses = newEnumTable(
	enumPair[OrderStatus, models.OrderStatus]{OrderStatusNew, models.OrderStatusNew},
	enumPair[OrderStatus, models.OrderStatus]{OrderStatusInProgress, models.OrderStatusInProgress},
	enumPair[OrderStatus, models.OrderStatus]{OrderStatusCompleted, models.OrderStatusCompleted},
	enumPair[OrderStatus, models.OrderStatus]{OrderStatusCancelled, models.OrderStatusCancelled},
)

var userRoles = newEnumTable(
	enumPair[UserRole, models.UserRole]{UserRoleAdmin, models.UserRoleAdmin},
	enumPair[UserRole, models.UserRole]{UserRoleUser, models.UserRoleUser},
)

// ToModel returns the storage value; ok is false for unknown wire values
func (t OrderType) ToModel() (models.OrderType, bool) {
	m, ok := orderTypes.toModel[t]
	return m, ok
}

func (t OrderType) String() string {
	if m, ok := t.ToModel(); ok {
		return string(m)
	}
	return "OrderType(unknown)"
}

// ToModel returns the storage value; ok is false for unknown wire values
func (s OrderStatus) ToModel() (models.OrderStatus, bool) {
	m, ok := orderStatuses.toModel[s]
	return m, ok
}

func (s OrderStatus) String() string {
	if m, ok := s.ToModel(); ok {
		return string(m)
	}
	return "OrderStatus(unknown)"
}

// ToModel returns the storage value; ok is false for unknown wire values
func (r UserRole) ToModel() (models.UserRole, bool) {
	m, ok := userRoles.toModel[r]
	return m, ok
}

func (r UserRole) String() string {
	if m, ok := r.ToModel(); ok {
		return string(m)
	}
	return "UserRole(unknown)"
}

// OrderTypeFromModel maps a stored type to the wire. Unknown stored values
// become the zero value.
func OrderTypeFromModel(m models.OrderType) OrderType {
	return orderTypes.fromModel[m]
}

// OrderStatusFromModel maps a stored status to the wire
func OrderStatusFromModel(m models.OrderStatus) OrderStatus {
	return orderStatuses.fromModel[m]
}

// UserRoleFromModel maps a stored role to the wire
func UserRoleFromModel(m models.UserRole) UserRole {
	return userRoles.fromModel[m]
}

// ParseOrderType looks a wire value up by its name, e.g. "MobileApp"
func ParseOrderType(name string) (OrderType, bool) {
	w, ok := orderTypes.fromModel[models.OrderType(name)]
	return w, ok
}

// ParseOrderStatus looks a wire value up by its name, e.g. "InProgress"
func ParseOrderStatus(name string) (OrderStatus, bool) {
	w, ok := orderStatuses.fromModel[models.OrderStatus(name)]
	return w, ok
}

// ParseUserRole looks a wire value up by its name, e.g. "Admin"
func ParseUserRole(name string) (UserRole, bool) {
	w, ok := userRoles.fromModel[models.UserRole(name)]
	return w, ok
}

// OrderToResponse maps a stored order to its wire form
func OrderToResponse(o *models.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	return &OrderResponse{
		ID:          int32(o.ID),
		Title:       o.Title,
		Description: o.Description,
		Type:        OrderTypeFromModel(o.Type),
		Status:      OrderStatusFromModel(o.Status),
		Price:       o.Price.InexactFloat64(),
		CreatedDate: timestamppb.New(o.CreatedDate),
		Deadline:    timestamppb.New(o.Deadline),
		ClientName:  o.ClientName,
		ClientEmail: o.ClientEmail,
		UserID:      o.CreatedByUserID,
	}
}

// UserToResponse maps a stored profile to its wire form
func UserToResponse(u *models.UserProfile) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		UserID:      u.UserID,
		UserName:    u.UserName,
		Email:       u.Email,
		Role:        UserRoleFromModel(u.Role),
		CreatedDate: timestamppb.New(u.CreatedDate),
	}
	if u.LastLoginDate != nil {
		resp.LastLoginDate = timestamppb.New(*u.LastLoginDate)
	}
	return resp
}
