package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, col Collection, rec *Record) error
	Update(ctx context.Context, db *gorm.DB, col Collection, rec *Record) error
	Delete(ctx context.Context, db *gorm.DB, col Collection, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, col Collection, id snowflake.ID) (*Record, error)
	FindBySlug(ctx context.Context, db *gorm.DB, col Collection, slug string) (*Record, error)
	List(ctx context.Context, db *gorm.DB, col Collection) ([]*Record, error)
}
