package models

// OrderType is the kind of work an order requests. Stored as its name.
type OrderType string

const (
	OrderTypeWebsiteDevelopment OrderType = "WebsiteDevelopment"
	OrderTypeMobileApp          OrderType = "MobileApp"
	OrderTypeAPIDevelopment     OrderType = "ApiDevelopment"
	OrderTypeDatabaseDesign     OrderType = "DatabaseDesign"
	OrderTypeSystemMaintenance  OrderType = "SystemMaintenance"
	OrderTypeBugFixing          OrderType = "BugFixing"
	OrderTypeConsultation       OrderType = "Consultation"
)

// OrderStatus is the progress of an order. Any status may follow any other.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "New"
	OrderStatusInProgress OrderStatus = "InProgress"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// UserRole decides what a user is allowed to see
type UserRole string

const (
	UserRoleAdmin UserRole = "Admin"
	UserRoleUser  UserRole = "User"
)

// DisplayName returns the human readable label used by the front end
func (t OrderType) DisplayName() string {
	switch t {
	case OrderTypeWebsiteDevelopment:
		return "Website Development"
	case OrderTypeMobileApp:
		return "Mobile App"
	case OrderTypeAPIDevelopment:
		return "API Development"
	case OrderTypeDatabaseDesign:
		return "Database Design"
	case OrderTypeSystemMaintenance:
		return "System Maintenance"
	case OrderTypeBugFixing:
		return "Bug Fixing"
	case OrderTypeConsultation:
		return "Consultation"
	}
	return string(t)
}

// DisplayName returns the human readable label used by the front end
func (s OrderStatus) DisplayName() string {
	if s == OrderStatusInProgress {
		return "In Progress"
	}
	return string(s)
}

// DisplayName returns the human readable label used by the front end
func (r UserRole) DisplayName() string {
	if r == UserRoleAdmin {
		return "Administrator"
	}
	return string(r)
}
