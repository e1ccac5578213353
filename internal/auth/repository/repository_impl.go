package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gulfbridge/portal/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertSession(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).Create(session).Error
}

func (r *repo) FindSessionByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*domain.Session, error) {
	var session domain.Session
	err := db.WithContext(ctx).Where("session_token_hash = ?", tokenHash).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *repo) RevokeSession(ctx context.Context, db *gorm.DB, tokenHash string) error {
	now := time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("session_token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", now).Error
}

func (r *repo) TouchSession(ctx context.Context, db *gorm.DB, tokenHash string) error {
	return db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("session_token_hash = ?", tokenHash).
		Update("last_seen_at", time.Now().UTC()).Error
}

func (r *repo) DeleteExpiredSessions(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&domain.Session{}).Error
}
