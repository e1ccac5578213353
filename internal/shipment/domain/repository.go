package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Upsert(ctx context.Context, db *gorm.DB, shipment *Shipment) error
	Delete(ctx context.Context, db *gorm.DB, trackingID string) error
	FindByTrackingID(ctx context.Context, db *gorm.DB, trackingID string) (*Shipment, error)
	List(ctx context.Context, db *gorm.DB) ([]*Shipment, error)
}
