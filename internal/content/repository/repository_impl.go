package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/content/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, col domain.Collection, rec *domain.Record) error {
	return db.WithContext(ctx).Table(col.Table()).Create(rec).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, col domain.Collection, rec *domain.Record) error {
	return db.WithContext(ctx).Table(col.Table()).Where("id = ?", rec.ID).Save(rec).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, col domain.Collection, id snowflake.ID) error {
	return db.WithContext(ctx).Table(col.Table()).Where("id = ?", id).Delete(&domain.Record{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, col domain.Collection, id snowflake.ID) (*domain.Record, error) {
	var rec domain.Record
	err := db.WithContext(ctx).Table(col.Table()).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, col domain.Collection, slug string) (*domain.Record, error) {
	var rec domain.Record
	err := db.WithContext(ctx).Table(col.Table()).Where("slug = ?", slug).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, col domain.Collection) ([]*domain.Record, error) {
	var recs []*domain.Record
	err := db.WithContext(ctx).Table(col.Table()).Order("created_at DESC").Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
