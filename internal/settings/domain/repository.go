package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertSocialLink(ctx context.Context, db *gorm.DB, link *SocialLink) error
	UpdateSocialLink(ctx context.Context, db *gorm.DB, link *SocialLink) error
	DeleteSocialLink(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindSocialLinkByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*SocialLink, error)
	ListSocialLinks(ctx context.Context, db *gorm.DB) ([]*SocialLink, error)

	UpsertSetting(ctx context.Context, db *gorm.DB, setting *Setting) error
	DeleteSetting(ctx context.Context, db *gorm.DB, key string) error
	FindSettingByKey(ctx context.Context, db *gorm.DB, key string) (*Setting, error)
}
