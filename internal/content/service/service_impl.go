package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/content/domain"
	"github.com/gulfbridge/portal/pkg/localized"
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
		log:   p.Log.Named("content.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context, col domain.Collection) ([]*domain.Record, error) {
	if !col.Valid() {
		return nil, domain.ErrUnknownCollection
	}
	return s.repo.List(ctx, s.db, col)
}

func (s *Service) GetByID(ctx context.Context, col domain.Collection, id string) (*domain.Record, error) {
	if !col.Valid() {
		return nil, domain.ErrUnknownCollection
	}
	recID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	rec, err := s.repo.FindByID(ctx, s.db, col, recID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (s *Service) GetBySlug(ctx context.Context, col domain.Collection, slugVal string) (*domain.Record, error) {
	if !col.Valid() || !col.HasSlug() {
		return nil, domain.ErrUnknownCollection
	}
	rec, err := s.repo.FindBySlug(ctx, s.db, col, slugVal)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (s *Service) Create(ctx context.Context, col domain.Collection, req domain.UpsertRequest) (*domain.Record, error) {
	if !col.Valid() {
		return nil, domain.ErrUnknownCollection
	}
	if req.Title.IsZero() {
		return nil, domain.ErrInvalidTitle
	}

	now := s.clock.Now()
	rec := &domain.Record{
		ID:          s.genID.Generate(),
		Title:       req.Title,
		Description: req.Description,
		ImageURLs:   toJSONSlice(req.ImageURLs),
		VideoURLs:   toJSONSlice(req.VideoURLs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if col.HasSlug() {
		slugVal, err := s.uniqueSlug(ctx, col, req.Title, rec.ID, 0)
		if err != nil {
			return nil, err
		}
		rec.Slug = slugVal
	}
	if err := s.repo.Insert(ctx, s.db, col, rec); err != nil {
		return nil, err
	}
	s.log.Info("content record created",
		zap.String("collection", string(col)), zap.String("id", rec.ID.String()))
	return rec, nil
}

func (s *Service) Update(ctx context.Context, col domain.Collection, id string, req domain.UpsertRequest) (*domain.Record, error) {
	if !col.Valid() {
		return nil, domain.ErrUnknownCollection
	}
	recID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	rec, err := s.repo.FindByID(ctx, s.db, col, recID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if req.Title.IsZero() {
		return nil, domain.ErrInvalidTitle
	}

	rec.Title = req.Title
	rec.Description = req.Description
	rec.ImageURLs = toJSONSlice(req.ImageURLs)
	rec.VideoURLs = toJSONSlice(req.VideoURLs)
	rec.UpdatedAt = s.clock.Now()
	if col.HasSlug() {
		slugVal, err := s.uniqueSlug(ctx, col, req.Title, rec.ID, recID)
		if err != nil {
			return nil, err
		}
		rec.Slug = slugVal
	}
	if err := s.repo.Update(ctx, s.db, col, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, col domain.Collection, id string) error {
	if !col.Valid() {
		return domain.ErrUnknownCollection
	}
	recID, err := snowflake.ParseString(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	rec, err := s.repo.FindByID(ctx, s.db, col, recID)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, col, recID)
}

// uniqueSlug derives a slug from the English title, falling back to Arabic,
// then to the record ID when transliteration produces nothing. Collisions get
// a numeric suffix. self is excluded so updates keep their own slug.
func (s *Service) uniqueSlug(ctx context.Context, col domain.Collection, title localized.Text, id snowflake.ID, self snowflake.ID) (string, error) {
	base := slug.Make(title.English())
	if base == "" {
		base = slug.Make(title.Arabic())
	}
	if base == "" {
		base = id.String()
	}

	candidate := base
	for i := 2; ; i++ {
		existing, err := s.repo.FindBySlug(ctx, s.db, col, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil || existing.ID == self {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func toJSONSlice(in []string) datatypes.JSONSlice[string] {
	if in == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](in)
}
