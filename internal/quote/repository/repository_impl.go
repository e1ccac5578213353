package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/quote/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertWithSequence(ctx context.Context, db *gorm.DB, quote *domain.Quote) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxSeq int
		err := tx.Model(&domain.Quote{}).
			Where("year = ?", quote.Year).
			Select("COALESCE(MAX(sequence), 0)").
			Scan(&maxSeq).Error
		if err != nil {
			return err
		}
		quote.Sequence = maxSeq + 1
		return tx.Create(quote).Error
	})
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, quote *domain.Quote) error {
	return db.WithContext(ctx).Save(quote).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Quote{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Quote, error) {
	var quote domain.Quote
	err := db.WithContext(ctx).Where("id = ?", id).First(&quote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]*domain.Quote, error) {
	q := db.WithContext(ctx).Model(&domain.Quote{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var quotes []*domain.Quote
	if err := q.Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}
