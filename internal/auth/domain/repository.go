package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertSession(ctx context.Context, db *gorm.DB, session *Session) error
	FindSessionByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*Session, error)
	RevokeSession(ctx context.Context, db *gorm.DB, tokenHash string) error
	TouchSession(ctx context.Context, db *gorm.DB, tokenHash string) error
	DeleteExpiredSessions(ctx context.Context, db *gorm.DB) error
}
