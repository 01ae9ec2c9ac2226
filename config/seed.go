package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/zuevus/mud-orders/logger"
	"github.com/zuevus/mud-orders/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// DefaultSeed is the administrator inserted on a fresh database
var DefaultSeed = []models.UserProfile{
	{
		UserID:   "admin-seed-id",
		UserName: "Administrator",
		Email:    "admin@zuevus.mud",
		Role:     models.UserRoleAdmin,
	},
}

type seedFile struct {
	Users []models.UserProfile `yaml:"users"`
}

// LoadSeed reads the profiles to seed from a YAML file. An empty path
// returns DefaultSeed.
func LoadSeed(path string) ([]models.UserProfile, error) {
	if path == "" {
		return DefaultSeed, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	for i, user := range file.Users {
		if user.UserID == "" {
			return nil, fmt.Errorf("seed file %s: user %d has no user_id", path, i)
		}
		if user.Role == "" {
			file.Users[i].Role = models.UserRoleUser
		}
	}
	return file.Users, nil
}

// SeedDatabase inserts every profile that does not exist yet. Existing rows
// are left untouched so restarts never overwrite edited profiles.
func SeedDatabase(db *gorm.DB, users []models.UserProfile) error {
	for _, user := range users {
		var existing models.UserProfile
		err := db.Where(map[string]interface{}{"UserId": user.UserID}).Take(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up seed user %s: %w", user.UserID, err)
		}

		user.CreatedDate = time.Now().UTC()
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.UserID, err)
		}
		logger.Info("Seeded user profile", zap.String("user_id", user.UserID), zap.String("role", string(user.Role)))
	}
	return nil
}
