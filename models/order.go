package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents one client work request
type Order struct {
	ID              int             `gorm:"column:Id;primaryKey;autoIncrement" json:"id"`
	Title           string          `gorm:"column:Title;size:200;not null" json:"title"`
	Description     string          `gorm:"column:Description" json:"description"`
	Type            OrderType       `gorm:"column:OrderType;not null" json:"type"`
	Status          OrderStatus     `gorm:"column:Status;not null;default:'New'" json:"status"`
	Price           decimal.Decimal `gorm:"column:Price;type:decimal(18,2);not null" json:"price"`
	CreatedDate     time.Time       `gorm:"column:CreatedDate;not null" json:"created_date"`
	Deadline        time.Time       `gorm:"column:Deadline;not null" json:"deadline"`
	ClientName      string          `gorm:"column:ClientName;size:100;not null" json:"client_name"`
	ClientEmail     string          `gorm:"column:ClientEmail;size:100;not null" json:"client_email"`
	CreatedByUserID string          `gorm:"column:CreatedByUserId;size:450;not null;index" json:"created_by_user_id"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "Orders"
}
