// Package domain contains core types for admin authentication.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Session is a persisted admin login session. Only the token hash is stored.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	AdminID          snowflake.ID `gorm:"column:admin_id;not null;index"`
	SessionTokenHash string       `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string       `gorm:"column:user_agent;type:text"`
	IPAddress        string       `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time    `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time   `gorm:"column:revoked_at"`
	CreatedAt        time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time    `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Session) TableName() string { return "sessions" }
