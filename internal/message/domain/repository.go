package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, msg *Message) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status Status) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Message, error)
	List(ctx context.Context, db *gorm.DB) ([]*Message, error)
}
