package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/content/domain"
	"github.com/gulfbridge/portal/internal/content/repository"
	"github.com/gulfbridge/portal/pkg/localized"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupContentService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	for _, table := range []string{"services", "products", "clients", "blog_posts", "news_items", "ads"} {
		require.NoError(t, db.Table(table).AutoMigrate(&domain.Record{}))
	}

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  repository.Provide(),
	})
	return svc, fake
}

func TestCreate_ArabicOnlyTitleAndNoImages(t *testing.T) {
	svc, _ := setupContentService(t)

	rec, err := svc.Create(context.Background(), domain.CollectionProducts, domain.UpsertRequest{
		Title: localized.New("حاويات مبردة", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, "حاويات مبردة", rec.Title.Resolve("en"))

	got, err := svc.GetByID(context.Background(), domain.CollectionProducts, rec.ID.String())
	require.NoError(t, err)
	require.NotNil(t, got.ImageURLs)
	assert.Empty(t, got.ImageURLs)
	assert.Empty(t, got.VideoURLs)
}

func TestCreate_TitleRequired(t *testing.T) {
	svc, _ := setupContentService(t)

	_, err := svc.Create(context.Background(), domain.CollectionServices, domain.UpsertRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)
}

func TestCreate_UnknownCollection(t *testing.T) {
	svc, _ := setupContentService(t)

	_, err := svc.Create(context.Background(), domain.Collection("widgets"), domain.UpsertRequest{
		Title: localized.FromString("x"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCollection)
}

func TestList_OrderedNewestFirst(t *testing.T) {
	svc, fake := setupContentService(t)

	first, err := svc.Create(context.Background(), domain.CollectionNews, domain.UpsertRequest{
		Title: localized.FromString("older"),
	})
	require.NoError(t, err)

	fake.Advance(time.Minute)

	second, err := svc.Create(context.Background(), domain.CollectionNews, domain.UpsertRequest{
		Title: localized.FromString("newer"),
	})
	require.NoError(t, err)

	recs, err := svc.List(context.Background(), domain.CollectionNews)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, second.ID, recs[0].ID)
	assert.Equal(t, first.ID, recs[1].ID)
}

func TestBlogSlugs(t *testing.T) {
	svc, _ := setupContentService(t)

	post, err := svc.Create(context.Background(), domain.CollectionBlog, domain.UpsertRequest{
		Title: localized.New("الشحن البحري", "Sea Freight Update"),
	})
	require.NoError(t, err)
	assert.Equal(t, "sea-freight-update", post.Slug)

	// Same title again gets a suffixed slug.
	dup, err := svc.Create(context.Background(), domain.CollectionBlog, domain.UpsertRequest{
		Title: localized.New("الشحن البحري", "Sea Freight Update"),
	})
	require.NoError(t, err)
	assert.Equal(t, "sea-freight-update-2", dup.Slug)

	got, err := svc.GetBySlug(context.Background(), domain.CollectionBlog, "sea-freight-update")
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	_, err = svc.GetBySlug(context.Background(), domain.CollectionBlog, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_KeepsOwnSlug(t *testing.T) {
	svc, _ := setupContentService(t)

	post, err := svc.Create(context.Background(), domain.CollectionBlog, domain.UpsertRequest{
		Title: localized.New("", "Customs Guide"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), domain.CollectionBlog, post.ID.String(), domain.UpsertRequest{
		Title:     localized.New("", "Customs Guide"),
		ImageURLs: []string{"https://cdn.example.com/a.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, post.Slug, updated.Slug)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, []string(updated.ImageURLs))
}

func TestDelete_ThenNotFound(t *testing.T) {
	svc, _ := setupContentService(t)

	rec, err := svc.Create(context.Background(), domain.CollectionAds, domain.UpsertRequest{
		Title: localized.FromString("summer promo"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), domain.CollectionAds, rec.ID.String()))

	_, err = svc.GetByID(context.Background(), domain.CollectionAds, rec.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(context.Background(), domain.CollectionAds, rec.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
