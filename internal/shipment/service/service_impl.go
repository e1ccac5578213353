package service

import (
	"context"
	"strings"

	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/shipment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("shipment.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Track(ctx context.Context, trackingID string) (*domain.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, domain.ErrInvalidTrackingID
	}
	shipment, err := s.repo.FindByTrackingID(ctx, s.db, trackingID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	return shipment, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Shipment, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Upsert(ctx context.Context, trackingID string, req domain.UpsertRequest) (*domain.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, domain.ErrInvalidTrackingID
	}
	if strings.TrimSpace(req.Status) == "" {
		return nil, domain.ErrInvalidStatus
	}

	now := s.clock.Now()
	shipment := &domain.Shipment{
		TrackingID:   trackingID,
		Status:       req.Status,
		CustomerName: req.CustomerName,
		Origin:       req.Origin,
		Destination:  req.Destination,
		ETA:          req.ETA,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Upsert(ctx, s.db, shipment); err != nil {
		return nil, err
	}
	s.log.Info("shipment upserted", zap.String("tracking_id", trackingID))
	return shipment, nil
}

func (s *Service) Delete(ctx context.Context, trackingID string) error {
	shipment, err := s.repo.FindByTrackingID(ctx, s.db, strings.TrimSpace(trackingID))
	if err != nil {
		return err
	}
	if shipment == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, shipment.TrackingID)
}
