package domain

import (
	"context"
	"errors"
)

type UpsertRequest struct {
	Status       string `json:"status"`
	CustomerName string `json:"customerName"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	ETA          string `json:"eta"`
	Notes        string `json:"notes"`
}

type Service interface {
	// Track is the public lookup used by the marketing site.
	Track(ctx context.Context, trackingID string) (*Shipment, error)
	List(ctx context.Context) ([]*Shipment, error)
	// Upsert creates or overwrites the shipment for trackingID. Last write
	// wins.
	Upsert(ctx context.Context, trackingID string, req UpsertRequest) (*Shipment, error)
	Delete(ctx context.Context, trackingID string) error
}

var (
	ErrNotFound          = errors.New("shipment_not_found")
	ErrInvalidTrackingID = errors.New("invalid_tracking_id")
	ErrInvalidStatus     = errors.New("status_required")
)
