package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/message/domain"
	"github.com/gulfbridge/portal/internal/message/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupMessageService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Message{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func TestSubmit_DefaultsUnread(t *testing.T) {
	svc := setupMessageService(t)

	msg, err := svc.Submit(context.Background(), domain.SubmitRequest{
		Name:    "Fahad",
		Email:   "fahad@example.com",
		Subject: "Rates",
		Message: "Do you ship refrigerated containers?",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnread, msg.Status)
}

func TestSubmit_Validation(t *testing.T) {
	svc := setupMessageService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, domain.SubmitRequest{Email: "a@b.c", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Submit(ctx, domain.SubmitRequest{Name: "x", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Submit(ctx, domain.SubmitRequest{Name: "x", Email: "a@b.c", Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc := setupMessageService(t)
	ctx := context.Background()

	msg, err := svc.Submit(ctx, domain.SubmitRequest{
		Name: "Fahad", Email: "fahad@example.com", Message: "hello",
	})
	require.NoError(t, err)

	first, err := svc.MarkRead(ctx, msg.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRead, first.Status)

	second, err := svc.MarkRead(ctx, msg.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRead, second.Status)
}

func TestMarkRead_Missing(t *testing.T) {
	svc := setupMessageService(t)

	_, err := svc.MarkRead(context.Background(), "123456789")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteMessage(t *testing.T) {
	svc := setupMessageService(t)
	ctx := context.Background()

	msg, err := svc.Submit(ctx, domain.SubmitRequest{
		Name: "Fahad", Email: "fahad@example.com", Message: "hello",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, msg.ID.String()))
	assert.ErrorIs(t, svc.Delete(ctx, msg.ID.String()), domain.ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
