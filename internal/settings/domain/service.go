package domain

import (
	"context"
	"encoding/json"
	"errors"
)

type UpsertSocialLinkRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Sort     int    `json:"sort"`
}

type Service interface {
	ListSocialLinks(ctx context.Context) ([]*SocialLink, error)
	CreateSocialLink(ctx context.Context, req UpsertSocialLinkRequest) (*SocialLink, error)
	UpdateSocialLink(ctx context.Context, id string, req UpsertSocialLinkRequest) (*SocialLink, error)
	DeleteSocialLink(ctx context.Context, id string) error

	GetSetting(ctx context.Context, key string) (*Setting, error)
	// PutSetting creates or replaces the value under key.
	PutSetting(ctx context.Context, key string, value json.RawMessage) (*Setting, error)
	DeleteSetting(ctx context.Context, key string) error
}

var (
	ErrNotFound        = errors.New("setting_not_found")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidKey      = errors.New("key_required")
	ErrInvalidValue    = errors.New("value_must_be_json")
	ErrInvalidPlatform = errors.New("platform_required")
	ErrInvalidURL      = errors.New("url_required")
)
