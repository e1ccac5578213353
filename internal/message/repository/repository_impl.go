package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/message/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, msg *domain.Message) error {
	return db.WithContext(ctx).Create(msg).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status domain.Status) error {
	return db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Message{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Message, error) {
	var msg domain.Message
	err := db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Message, error) {
	var msgs []*domain.Message
	err := db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
