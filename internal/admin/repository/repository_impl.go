package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/admin/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, admin *domain.Admin) error {
	return db.WithContext(ctx).Create(admin).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, admin *domain.Admin) error {
	return db.WithContext(ctx).Save(admin).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Admin{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Admin, error) {
	var admin domain.Admin
	err := db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Admin, error) {
	var admin domain.Admin
	err := db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Admin, error) {
	var admins []*domain.Admin
	err := db.WithContext(ctx).
		Model(&domain.Admin{}).
		Order("created_at desc, id desc").
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Admin{}).Count(&count).Error
	return count, err
}
