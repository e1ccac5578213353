package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/message/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
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
		log:   p.Log.Named("message.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Message, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	body := strings.TrimSpace(req.Message)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}
	if body == "" {
		return nil, domain.ErrInvalidMessage
	}

	msg := &domain.Message{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(req.Subject),
		Body:      body,
		Status:    domain.StatusUnread,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, msg); err != nil {
		return nil, err
	}
	s.log.Info("contact message received", zap.String("id", msg.ID.String()))
	return msg, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Message, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) MarkRead(ctx context.Context, id string) (*domain.Message, error) {
	msgID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	msg, err := s.repo.FindByID(ctx, s.db, msgID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, domain.ErrNotFound
	}
	if msg.Status == domain.StatusRead {
		return msg, nil
	}
	if err := s.repo.UpdateStatus(ctx, s.db, msgID, domain.StatusRead); err != nil {
		return nil, err
	}
	msg.Status = domain.StatusRead
	return msg, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	msgID, err := snowflake.ParseString(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	msg, err := s.repo.FindByID(ctx, s.db, msgID)
	if err != nil {
		return err
	}
	if msg == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, msgID)
}
