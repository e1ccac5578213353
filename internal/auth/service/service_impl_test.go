package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
	adminrepository "github.com/gulfbridge/portal/internal/admin/repository"
	"github.com/gulfbridge/portal/internal/auth/domain"
	"github.com/gulfbridge/portal/internal/auth/password"
	"github.com/gulfbridge/portal/internal/auth/repository"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (domain.Service, *clock.FakeClock, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&admindomain.Admin{}, &domain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	svc := New(Params{
		Cfg:       config.Config{SessionTTLHours: 72},
		DB:        db,
		Log:       zap.NewNop(),
		GenID:     node,
		Clock:     fake,
		Repo:      repository.Provide(),
		AdminRepo: adminrepository.Provide(),
	})
	return svc, fake, db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, plain string) admindomain.Admin {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	admin := admindomain.Admin{
		ID:           node.Generate(),
		Email:        email,
		Role:         admindomain.RoleSuperAdmin,
		Permissions:  admindomain.DefaultPermissions(admindomain.RoleSuperAdmin),
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func TestLogin_Success(t *testing.T) {
	svc, _, db := setupAuthService(t)
	admin := seedAdmin(t, db, "ops@example.com", "correct horse battery")

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "OPS@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, res.Admin.ID)
	assert.NotEmpty(t, res.RawToken)

	// The raw token must never be persisted as-is.
	var count int64
	require.NoError(t, db.Model(&domain.Session{}).
		Where("session_token_hash = ?", res.RawToken).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, db := setupAuthService(t)
	seedAdmin(t, db, "ops@example.com", "correct horse battery")

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ops@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	svc, _, db := setupAuthService(t)
	admin := seedAdmin(t, db, "ops@example.com", "correct horse battery")

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ops@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), res.RawToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.True(t, got.Permissions.Can("shipments", "edit"))
}

func TestAuthenticate_Expired(t *testing.T) {
	svc, fake, db := setupAuthService(t)
	seedAdmin(t, db, "ops@example.com", "correct horse battery")

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ops@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	fake.Advance(73 * time.Hour)

	_, err = svc.Authenticate(context.Background(), res.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestAuthenticate_AfterLogout(t *testing.T) {
	svc, _, db := setupAuthService(t)
	seedAdmin(t, db, "ops@example.com", "correct horse battery")

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ops@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), res.RawToken))

	_, err = svc.Authenticate(context.Background(), res.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Authenticate(context.Background(), "not-a-real-token")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}
