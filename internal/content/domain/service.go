package domain

import (
	"context"
	"errors"

	"github.com/gulfbridge/portal/pkg/localized"
)

type UpsertRequest struct {
	Title       localized.Text `json:"title"`
	Description localized.Text `json:"description"`
	ImageURLs   []string       `json:"imageUrls"`
	VideoURLs   []string       `json:"videoUrls"`
}

type Service interface {
	List(ctx context.Context, col Collection) ([]*Record, error)
	GetByID(ctx context.Context, col Collection, id string) (*Record, error)
	// GetBySlug only applies to slug-bearing collections (blog, news).
	GetBySlug(ctx context.Context, col Collection, slug string) (*Record, error)
	Create(ctx context.Context, col Collection, req UpsertRequest) (*Record, error)
	Update(ctx context.Context, col Collection, id string, req UpsertRequest) (*Record, error)
	Delete(ctx context.Context, col Collection, id string) error
}

var (
	ErrNotFound          = errors.New("record_not_found")
	ErrUnknownCollection = errors.New("unknown_collection")
	ErrInvalidID         = errors.New("invalid_record_id")
	ErrInvalidTitle      = errors.New("title_required")
)
