package domain

import (
	"context"
	"errors"
)

type SubmitRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	EntityType string `json:"entityType"`
	EntityName string `json:"entityName"`
	Items      []Item `json:"items"`
}

// UpdateRequest carries the admin-editable fields. Nil pointers leave the
// stored value untouched.
type UpdateRequest struct {
	Status     *Status `json:"status"`
	AdminNotes *string `json:"adminNotes"`
	Currency   *string `json:"currency"`
	Items      []Item  `json:"items"`
}

type ListFilter struct {
	Status Status
}

type Service interface {
	// Submit is the public quote-request entry point. The quote is created
	// with status pending and a freshly assigned (year, sequence).
	Submit(ctx context.Context, req SubmitRequest) (*Quote, error)
	List(ctx context.Context, filter ListFilter) ([]*Quote, error)
	GetByID(ctx context.Context, id string) (*Quote, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Quote, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound      = errors.New("quote_not_found")
	ErrInvalidID     = errors.New("invalid_quote_id")
	ErrNoItems       = errors.New("at_least_one_item_required")
	ErrInvalidEmail  = errors.New("email_required")
	ErrInvalidPhone  = errors.New("phone_required")
	ErrInvalidStatus = errors.New("invalid_status")
)
