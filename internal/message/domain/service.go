package domain

import (
	"context"
	"errors"
)

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Service interface {
	// Submit is the public contact-form entry point. New messages always
	// start unread.
	Submit(ctx context.Context, req SubmitRequest) (*Message, error)
	List(ctx context.Context) ([]*Message, error)
	// MarkRead is idempotent: marking an already read message succeeds.
	MarkRead(ctx context.Context, id string) (*Message, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound       = errors.New("message_not_found")
	ErrInvalidID      = errors.New("invalid_message_id")
	ErrInvalidName    = errors.New("name_required")
	ErrInvalidEmail   = errors.New("email_required")
	ErrInvalidMessage = errors.New("message_required")
)
