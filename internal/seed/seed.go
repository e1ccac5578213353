// Package seed bootstraps the first Super Admin on a fresh install.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
	"github.com/gulfbridge/portal/internal/auth/password"
	"gorm.io/gorm"
)

const (
	bootstrapAdminEmail    = "admin@gulfbridge.example"
	bootstrapAdminPassword = "change-me-now"
)

// EnsureBootstrapAdmin creates one Super Admin with full permissions if and
// only if the admins table is empty. Existing installs are never touched.
func EnsureBootstrapAdmin(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&admindomain.Admin{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hashed, err := password.Hash(bootstrapAdminPassword)
		if err != nil {
			return err
		}
		admin := admindomain.Admin{
			ID:           node.Generate(),
			Email:        bootstrapAdminEmail,
			Role:         admindomain.RoleSuperAdmin,
			Permissions:  admindomain.DefaultPermissions(admindomain.RoleSuperAdmin),
			PasswordHash: hashed,
		}
		return tx.Create(&admin).Error
	})
}
