package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"saira_acad/internal/auth"
	"saira_acad/internal/models"
)

// DefaultAdmin creates the bootstrap super-admin when the admins table is empty.
// It reports whether a row was created.
func DefaultAdmin(ctx context.Context, db *gorm.DB, hasher *auth.Hasher, username, password string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash default admin password: %w", err)
	}

	admin := models.Admin{
		Username:    username,
		Password:    hash,
		AdminRole:   models.AdminRoleSuper,
		Status:      models.StatusActive,
		CreatedDate: time.Now(),
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, fmt.Errorf("create default admin: %w", err)
	}

	logrus.WithField("username", username).Info("Default admin created")
	return true, nil
}
