package repository

import (
	"context"
	"errors"

	"github.com/gulfbridge/portal/internal/shipment/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, shipment *domain.Shipment) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tracking_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "customer_name", "origin", "destination", "eta", "notes", "updated_at",
		}),
	}).Create(shipment).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, trackingID string) error {
	return db.WithContext(ctx).
		Where("tracking_id = ?", trackingID).
		Delete(&domain.Shipment{}).Error
}

func (r *repo) FindByTrackingID(ctx context.Context, db *gorm.DB, trackingID string) (*domain.Shipment, error) {
	var shipment domain.Shipment
	err := db.WithContext(ctx).Where("tracking_id = ?", trackingID).First(&shipment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Shipment, error) {
	var shipments []*domain.Shipment
	err := db.WithContext(ctx).Order("updated_at DESC").Find(&shipments).Error
	if err != nil {
		return nil, err
	}
	return shipments, nil
}
