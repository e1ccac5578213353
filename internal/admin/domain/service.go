package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateAdminRequest struct {
	Email       string
	Password    string
	Role        Role
	Permissions PermissionMap
}

type UpdateAdminRequest struct {
	ID          string
	Role        *Role
	Permissions PermissionMap
	Password    string
}

type DeleteAdminRequest struct {
	ID      string
	ActorID snowflake.ID
}

type Service interface {
	List(ctx context.Context) ([]Admin, error)
	GetByID(ctx context.Context, id string) (Admin, error)
	GetByEmail(ctx context.Context, email string) (Admin, error)
	Create(ctx context.Context, req CreateAdminRequest) (Admin, error)
	Update(ctx context.Context, req UpdateAdminRequest) (Admin, error)
	Delete(ctx context.Context, req DeleteAdminRequest) error
}

var (
	ErrNotFound        = errors.New("admin_not_found")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrInvalidPassword = errors.New("invalid_password")
	ErrInvalidRole     = errors.New("invalid_role")
	ErrInvalidID       = errors.New("invalid_id")
	ErrEmailTaken      = errors.New("email_taken")
	ErrSelfDelete      = errors.New("self_delete")
)
