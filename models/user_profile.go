package models

import (
	"time"
)

// UserProfile is an account record. UserID comes from the identity provider.
type UserProfile struct {
	UserID        string     `gorm:"column:UserId;primaryKey;size:450" json:"user_id" yaml:"user_id"`
	UserName      string     `gorm:"column:UserName;size:100;not null" json:"user_name" yaml:"user_name"`
	Email         string     `gorm:"column:Email;size:150;not null" json:"email" yaml:"email"`
	Role          UserRole   `gorm:"column:Role;not null;default:'User'" json:"role" yaml:"role"`
	CreatedDate   time.Time  `gorm:"column:CreatedDate" json:"created_date" yaml:"-"`
	LastLoginDate *time.Time `gorm:"column:LastLoginDate" json:"last_login_date,omitempty" yaml:"-"` // set by the login flow only
}

// TableName specifies the table name for the UserProfile model
func (UserProfile) TableName() string {
	return "UserProfiles"
}

// All returns every model that must be migrated
func All() []interface{} {
	return []interface{}{&UserProfile{}, &Order{}}
}
