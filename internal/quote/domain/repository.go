package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// InsertWithSequence assigns quote.Sequence as MAX(sequence)+1 within
	// quote.Year and inserts, all inside one transaction.
	InsertWithSequence(ctx context.Context, db *gorm.DB, quote *Quote) error
	Update(ctx context.Context, db *gorm.DB, quote *Quote) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Quote, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*Quote, error)
}
