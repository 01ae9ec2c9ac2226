package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zuevus/mud-orders/logger"
	"github.com/zuevus/mud-orders/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserProfileInput carries the client supplied fields of a profile
type UserProfileInput struct {
	UserID   string
	UserName string
	Email    string
	Role     models.UserRole
}

// UserService persists user profiles
type UserService interface {
	CreateUserProfile(ctx context.Context, in UserProfileInput) (*models.UserProfile, error)
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, in UserProfileInput) (*models.UserProfile, error)
	DeleteUserProfile(ctx context.Context, userID string) (bool, error)
	GetUsers(ctx context.Context, filterRole models.UserRole) ([]models.UserProfile, error)
}

type userService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserService creates a UserService backed by db
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db, now: utcNow}
}

// CreateUserProfile stores a profile as given. No field validation is
// applied; the store's constraints are the only check.
func (s *userService) CreateUserProfile(ctx context.Context, in UserProfileInput) (*models.UserProfile, error) {
	user := models.UserProfile{
		UserID:      in.UserID,
		UserName:    in.UserName,
		Email:       in.Email,
		Role:        in.Role,
		CreatedDate: s.now(),
	}

	if err := session(ctx, s.db).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user profile %s: %w", in.UserID, err)
	}

	logger.Info("User profile created", zap.String("user_id", user.UserID))
	return &user, nil
}

// GetUserProfile returns the profile or a NotFound error
func (s *userService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := findUser(session(ctx, s.db), userID, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile overwrites user name, email and role
func (s *userService) UpdateUserProfile(ctx context.Context, in UserProfileInput) (*models.UserProfile, error) {
	db := session(ctx, s.db)

	var user models.UserProfile
	if err := findUser(db, in.UserID, &user); err != nil {
		return nil, err
	}

	user.UserName = in.UserName
	user.Email = in.Email
	user.Role = in.Role

	result := db.Model(&user).Select("UserName", "Email", "Role").Updates(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user profile %s: %w", in.UserID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, userNotFound(in.UserID)
	}
	return &user, nil
}

// DeleteUserProfile removes the profile. It returns true on success.
func (s *userService) DeleteUserProfile(ctx context.Context, userID string) (bool, error) {
	result := session(ctx, s.db).
		Where(map[string]interface{}{"UserId": userID}).
		Delete(&models.UserProfile{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete user profile %s: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, userNotFound(userID)
	}

	logger.Info("User profile deleted", zap.String("user_id", userID))
	return true, nil
}

// GetUsers lists profiles whose role equals filterRole. Admin is not a
// filter value: it returns every profile.
func (s *userService) GetUsers(ctx context.Context, filterRole models.UserRole) ([]models.UserProfile, error) {
	users := []models.UserProfile{}
	query := session(ctx, s.db).Model(&models.UserProfile{})
	if filterRole != models.UserRoleAdmin {
		query = query.Where(map[string]interface{}{"Role": filterRole})
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list user profiles: %w", err)
	}
	return users, nil
}

func userNotFound(userID string) error {
	return notFound(fmt.Sprintf("User with ID %s not found", userID))
}

func findUser(tx *gorm.DB, userID string, user *models.UserProfile) error {
	err := tx.Where(map[string]interface{}{"UserId": userID}).Take(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return userNotFound(userID)
	}
	if err != nil {
		return fmt.Errorf("failed to load user profile %s: %w", userID, err)
	}
	return nil
}
