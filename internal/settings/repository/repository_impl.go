package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/settings/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertSocialLink(ctx context.Context, db *gorm.DB, link *domain.SocialLink) error {
	return db.WithContext(ctx).Create(link).Error
}

func (r *repo) UpdateSocialLink(ctx context.Context, db *gorm.DB, link *domain.SocialLink) error {
	return db.WithContext(ctx).Save(link).Error
}

func (r *repo) DeleteSocialLink(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.SocialLink{}).Error
}

func (r *repo) FindSocialLinkByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.SocialLink, error) {
	var link domain.SocialLink
	err := db.WithContext(ctx).Where("id = ?", id).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *repo) ListSocialLinks(ctx context.Context, db *gorm.DB) ([]*domain.SocialLink, error) {
	var links []*domain.SocialLink
	err := db.WithContext(ctx).Order("sort ASC, created_at ASC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *repo) UpsertSetting(ctx context.Context, db *gorm.DB, setting *domain.Setting) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}

func (r *repo) DeleteSetting(ctx context.Context, db *gorm.DB, key string) error {
	return db.WithContext(ctx).Where("key = ?", key).Delete(&domain.Setting{}).Error
}

func (r *repo) FindSettingByKey(ctx context.Context, db *gorm.DB, key string) (*domain.Setting, error) {
	var setting domain.Setting
	err := db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}
