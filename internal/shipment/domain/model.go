// Package domain contains shipment tracking types.
package domain

import "time"

// Shipment is keyed by the tracking ID staff hand to the customer. There is
// no history: updates overwrite in place.
type Shipment struct {
	TrackingID   string    `gorm:"column:tracking_id;primaryKey;type:text" json:"trackingId"`
	Status       string    `gorm:"type:text;not null" json:"status"`
	CustomerName string    `gorm:"column:customer_name;type:text" json:"customerName"`
	Origin       string    `gorm:"type:text" json:"origin"`
	Destination  string    `gorm:"type:text" json:"destination"`
	ETA          string    `gorm:"column:eta;type:text" json:"eta"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Shipment) TableName() string { return "shipments" }
