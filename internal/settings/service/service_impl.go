package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("settings.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) ListSocialLinks(ctx context.Context) ([]*domain.SocialLink, error) {
	return s.repo.ListSocialLinks(ctx, s.db)
}

func (s *Service) CreateSocialLink(ctx context.Context, req domain.UpsertSocialLinkRequest) (*domain.SocialLink, error) {
	platform := strings.TrimSpace(req.Platform)
	url := strings.TrimSpace(req.URL)
	if platform == "" {
		return nil, domain.ErrInvalidPlatform
	}
	if url == "" {
		return nil, domain.ErrInvalidURL
	}

	now := s.clock.Now()
	link := &domain.SocialLink{
		ID:        s.genID.Generate(),
		Platform:  platform,
		URL:       url,
		Sort:      req.Sort,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertSocialLink(ctx, s.db, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Service) UpdateSocialLink(ctx context.Context, id string, req domain.UpsertSocialLinkRequest) (*domain.SocialLink, error) {
	linkID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	link, err := s.repo.FindSocialLinkByID(ctx, s.db, linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}

	platform := strings.TrimSpace(req.Platform)
	url := strings.TrimSpace(req.URL)
	if platform == "" {
		return nil, domain.ErrInvalidPlatform
	}
	if url == "" {
		return nil, domain.ErrInvalidURL
	}

	link.Platform = platform
	link.URL = url
	link.Sort = req.Sort
	link.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateSocialLink(ctx, s.db, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Service) DeleteSocialLink(ctx context.Context, id string) error {
	linkID, err := snowflake.ParseString(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	link, err := s.repo.FindSocialLinkByID(ctx, s.db, linkID)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteSocialLink(ctx, s.db, linkID)
}

func (s *Service) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domain.ErrInvalidKey
	}
	setting, err := s.repo.FindSettingByKey(ctx, s.db, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.ErrNotFound
	}
	return setting, nil
}

func (s *Service) PutSetting(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domain.ErrInvalidKey
	}
	if !json.Valid(value) {
		return nil, domain.ErrInvalidValue
	}

	setting := &domain.Setting{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: s.clock.Now(),
	}
	if err := s.repo.UpsertSetting(ctx, s.db, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *Service) DeleteSetting(ctx context.Context, key string) error {
	setting, err := s.GetSetting(ctx, key)
	if err != nil {
		return err
	}
	return s.repo.DeleteSetting(ctx, s.db, setting.Key)
}
