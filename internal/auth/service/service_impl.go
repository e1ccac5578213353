package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
	"github.com/gulfbridge/portal/internal/auth/domain"
	"github.com/gulfbridge/portal/internal/auth/password"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Cfg       config.Config
	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	AdminRepo admindomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	repo       domain.Repository
	adminRepo  admindomain.Repository
	sessionTTL time.Duration
}

func New(p Params) domain.Service {
	ttl := time.Duration(p.Cfg.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("auth.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		adminRepo:  p.AdminRepo,
		sessionTTL: ttl,
	}
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !password.Verify(req.Password, admin.PasswordHash) {
		// Same failure for unknown email and bad password.
		return nil, domain.ErrInvalidCredentials
	}

	rawToken := uuid.NewString()
	now := s.clock.Now()
	session := domain.Session{
		ID:               s.genID.Generate(),
		AdminID:          admin.ID,
		SessionTokenHash: hashToken(rawToken),
		UserAgent:        req.UserAgent,
		IPAddress:        req.IPAddress,
		ExpiresAt:        now.Add(s.sessionTTL),
		CreatedAt:        now,
		LastSeenAt:       now,
	}
	if err := s.repo.InsertSession(ctx, s.db, &session); err != nil {
		return nil, err
	}

	result := *admin
	result.Permissions = result.EffectivePermissions()
	s.log.Info("admin login", zap.String("email", result.Email))

	return &domain.LoginResult{
		Admin:     result,
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	return s.repo.RevokeSession(ctx, s.db, hashToken(rawToken))
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*admindomain.Admin, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, domain.ErrInvalidSession
	}

	tokenHash := hashToken(rawToken)
	session, err := s.repo.FindSessionByTokenHash(ctx, s.db, tokenHash)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrInvalidSession
	}
	if session.RevokedAt != nil {
		return nil, domain.ErrSessionRevoked
	}
	if s.clock.Now().After(session.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	admin, err := s.adminRepo.FindByID(ctx, s.db, session.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrInvalidSession
	}

	_ = s.repo.TouchSession(ctx, s.db, tokenHash)

	result := *admin
	result.Permissions = result.EffectivePermissions()
	return &result, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
