// Package domain contains quotation request types and pricing rules.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDraft, StatusSent:
		return true
	}
	return false
}

// Item is one requested service line. Quantity and Price arrive as free-form
// strings from the public form; non-numeric values count as zero at totals
// time.
type Item struct {
	ServiceID        string `json:"serviceId"`
	ServiceName      string `json:"serviceName"`
	Quantity         string `json:"quantity"`
	DeliveryLocation string `json:"deliveryLocation"`
	Price            string `json:"price,omitempty"`
}

func (i Item) QuantityValue() float64 { return lenientFloat(i.Quantity) }
func (i Item) PriceValue() float64    { return lenientFloat(i.Price) }

func (i Item) LineTotal() float64 {
	return i.QuantityValue() * i.PriceValue()
}

func lenientFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Items is stored as a JSON column.
type Items []Item

func (items Items) Value() (driver.Value, error) {
	if items == nil {
		items = Items{}
	}
	return json.Marshal(items)
}

func (items *Items) Scan(value any) error {
	if value == nil {
		*items = Items{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported quote items type %T", value)
	}
	return json.Unmarshal(data, items)
}

func (Items) GormDataType() string { return "json" }

func (Items) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "jsonb"
	case "mysql":
		return "json"
	}
	return "text"
}

// Quote is a quotation request. (Year, Sequence) are assigned once inside the
// insert transaction and never change; the human-facing reference is derived
// from them.
type Quote struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Email       string       `gorm:"type:text;not null" json:"email"`
	Phone       string       `gorm:"type:text;not null" json:"phone"`
	EntityType  string       `gorm:"column:entity_type;type:text" json:"entityType"`
	EntityName  string       `gorm:"column:entity_name;type:text" json:"entityName"`
	Items       Items        `gorm:"not null" json:"items"`
	Status      Status       `gorm:"type:text;not null;default:pending" json:"status"`
	AdminNotes  string       `gorm:"column:admin_notes;type:text" json:"adminNotes"`
	Currency    string       `gorm:"type:text;not null" json:"currency"`
	Year        int          `gorm:"not null;uniqueIndex:idx_quotes_year_sequence" json:"year"`
	Sequence    int          `gorm:"not null;uniqueIndex:idx_quotes_year_sequence" json:"sequence"`
	CreatedAt   time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Quote) TableName() string { return "quotes" }

// Reference renders the stable quote number, e.g. Q-2025-0042.
func (q Quote) Reference() string {
	return fmt.Sprintf("Q-%d-%04d", q.Year, q.Sequence)
}

// GrandTotal sums quantity times price across items.
func (q Quote) GrandTotal() float64 {
	var total float64
	for _, item := range q.Items {
		total += item.LineTotal()
	}
	return total
}
