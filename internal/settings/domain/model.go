// Package domain contains site settings and social link types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type SocialLink struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Platform  string       `gorm:"type:text;not null" json:"platform"`
	URL       string       `gorm:"type:text;not null" json:"url"`
	Sort      int          `gorm:"not null;default:0" json:"sort"`
	CreatedAt time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (SocialLink) TableName() string { return "social_links" }

// Setting is a free-form JSON value under a unique key, e.g. homepage hero
// text or office hours.
type Setting struct {
	Key       string         `gorm:"primaryKey;type:text" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Setting) TableName() string { return "settings" }
