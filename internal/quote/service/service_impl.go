package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/config"
	"github.com/gulfbridge/portal/internal/quote/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Quotation *config.QuotationConfigHolder
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	quotation *config.QuotationConfigHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("quote.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		quotation: p.Quotation,
	}
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Quote, error) {
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}
	if phone == "" {
		return nil, domain.ErrInvalidPhone
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrNoItems
	}

	now := s.clock.Now()
	quote := &domain.Quote{
		ID:         s.genID.Generate(),
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Phone:      phone,
		EntityType: strings.TrimSpace(req.EntityType),
		EntityName: strings.TrimSpace(req.EntityName),
		Items:      domain.Items(req.Items),
		Status:     domain.StatusPending,
		Currency:   s.quotation.Current().Currency,
		Year:       now.Year(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.InsertWithSequence(ctx, s.db, quote); err != nil {
		return nil, err
	}
	s.log.Info("quote request received",
		zap.String("id", quote.ID.String()), zap.String("reference", quote.Reference()))
	return quote, nil
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Quote, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, s.db, filter)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	quoteID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	quote, err := s.repo.FindByID(ctx, s.db, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return quote, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Quote, error) {
	quote, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		quote.Status = *req.Status
	}
	if req.AdminNotes != nil {
		quote.AdminNotes = *req.AdminNotes
	}
	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		quote.Currency = strings.TrimSpace(*req.Currency)
	}
	if req.Items != nil {
		if len(req.Items) == 0 {
			return nil, domain.ErrNoItems
		}
		quote.Items = domain.Items(req.Items)
	}
	quote.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	quote, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, quote.ID)
}
