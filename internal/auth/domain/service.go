package domain

import (
	"context"
	"errors"
	"time"

	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
)

type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	Admin     admindomain.Admin
	RawToken  string
	ExpiresAt time.Time
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	// Authenticate resolves a raw session token to the owning admin with
	// permissions already merged against the current schema.
	Authenticate(ctx context.Context, rawToken string) (*admindomain.Admin, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrSessionExpired     = errors.New("session_expired")
	ErrSessionRevoked     = errors.New("session_revoked")
)
