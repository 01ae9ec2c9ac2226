package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "Orders", Order{}.TableName(), "Table name should be 'Orders'")
	assert.Equal(t, "UserProfiles", UserProfile{}.TableName(), "Table name should be 'UserProfiles'")
}

func TestUserProfileDefaultValues(t *testing.T) {
	user := UserProfile{
		UserID: "user-1",
		Email:  "new@example.com",
	}

	assert.Equal(t, "new@example.com", user.Email, "Email should be set")
	assert.Equal(t, UserRole(""), user.Role, "Role should be empty in the Go struct until the database default applies")
	assert.Nil(t, user.LastLoginDate, "LastLoginDate should be nil by default")
}

func TestOrderTypeDisplayName(t *testing.T) {
	tests := []struct {
		orderType OrderType
		want      string
	}{
		{OrderTypeWebsiteDevelopment, "Website Development"},
		{OrderTypeMobileApp, "Mobile App"},
		{OrderTypeAPIDevelopment, "API Development"},
		{OrderTypeDatabaseDesign, "Database Design"},
		{OrderTypeSystemMaintenance, "System Maintenance"},
		{OrderTypeBugFixing, "Bug Fixing"},
		{OrderTypeConsultation, "Consultation"},
	}

	for _, tt := range tests {
		t.Run(string(tt.orderType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.orderType.DisplayName())
		})
	}
}

func TestStatusAndRoleDisplayName(t *testing.T) {
	assert.Equal(t, "New", OrderStatusNew.DisplayName())
	assert.Equal(t, "In Progress", OrderStatusInProgress.DisplayName())
	assert.Equal(t, "Cancelled", OrderStatusCancelled.DisplayName())
	assert.Equal(t, "Administrator", UserRoleAdmin.DisplayName())
	assert.Equal(t, "User", UserRoleUser.DisplayName())
}

func TestAllModels(t *testing.T) {
	all := All()
	assert.Len(t, all, 2)
	assert.IsType(t, &UserProfile{}, all[0])
	assert.IsType(t, &Order{}, all[1])
}
