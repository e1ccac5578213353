package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/settings/domain"
	"github.com/gulfbridge/portal/internal/settings/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSettingsService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.SocialLink{}, &domain.Setting{}))

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

func TestSocialLinks_SortedBySortThenCreation(t *testing.T) {
	svc := setupSettingsService(t)
	ctx := context.Background()

	_, err := svc.CreateSocialLink(ctx, domain.UpsertSocialLinkRequest{
		Platform: "linkedin", URL: "https://linkedin.com/company/x", Sort: 2,
	})
	require.NoError(t, err)
	_, err = svc.CreateSocialLink(ctx, domain.UpsertSocialLinkRequest{
		Platform: "instagram", URL: "https://instagram.com/x", Sort: 1,
	})
	require.NoError(t, err)

	links, err := svc.ListSocialLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "instagram", links[0].Platform)
	assert.Equal(t, "linkedin", links[1].Platform)
}

func TestSocialLink_Validation(t *testing.T) {
	svc := setupSettingsService(t)
	ctx := context.Background()

	_, err := svc.CreateSocialLink(ctx, domain.UpsertSocialLinkRequest{URL: "https://x.com/x"})
	assert.ErrorIs(t, err, domain.ErrInvalidPlatform)

	_, err = svc.CreateSocialLink(ctx, domain.UpsertSocialLinkRequest{Platform: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidURL)

	_, err = svc.UpdateSocialLink(ctx, "not-a-snowflake", domain.UpsertSocialLinkRequest{
		Platform: "x", URL: "https://x.com/x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestPutSetting_UpsertsByKey(t *testing.T) {
	svc := setupSettingsService(t)
	ctx := context.Background()

	first, err := svc.PutSetting(ctx, "office_hours", json.RawMessage(`{"ar":"٨-٥","en":"8-5"}`))
	require.NoError(t, err)
	assert.Equal(t, "office_hours", first.Key)

	second, err := svc.PutSetting(ctx, "office_hours", json.RawMessage(`{"ar":"٩-٦","en":"9-6"}`))
	require.NoError(t, err)

	got, err := svc.GetSetting(ctx, "office_hours")
	require.NoError(t, err)
	assert.JSONEq(t, string(second.Value), string(got.Value))
	assert.Contains(t, string(got.Value), "9-6")
}

func TestPutSetting_RejectsInvalidJSON(t *testing.T) {
	svc := setupSettingsService(t)

	_, err := svc.PutSetting(context.Background(), "broken", json.RawMessage(`{not json`))
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestGetSetting_UnknownKeyNotFound(t *testing.T) {
	svc := setupSettingsService(t)

	_, err := svc.GetSetting(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.DeleteSetting(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}
