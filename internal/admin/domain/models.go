package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
)

type Admin struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	Email        string        `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Role         Role          `gorm:"type:text;not null" json:"role"`
	Permissions  PermissionMap `gorm:"not null" json:"permissions"`
	PasswordHash string        `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Admin) TableName() string { return "admins" }

// EffectivePermissions merges the stored grid against the current schema
// skeleton for the admin's role.
func (a Admin) EffectivePermissions() PermissionMap {
	return MergePermissions(a.Permissions, DefaultPermissions(a.Role))
}
