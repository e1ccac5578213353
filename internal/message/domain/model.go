// Package domain contains contact-form message types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

type Message struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Email     string       `gorm:"type:text;not null" json:"email"`
	Subject   string       `gorm:"type:text" json:"subject"`
	Body      string       `gorm:"column:message;type:text;not null" json:"message"`
	Status    Status       `gorm:"type:text;not null;default:unread" json:"status"`
	CreatedAt time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
