package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/gulfbridge/portal/internal/career/domain"
	"github.com/gulfbridge/portal/internal/career/repository"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/pkg/localized"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCareerService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Job{}, &domain.Application{}))

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

func TestApply_OpenJob(t *testing.T) {
	svc, _ := setupCareerService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, domain.UpsertJobRequest{
		Title:      localized.New("منسق عمليات", "Operations Coordinator"),
		Department: "Operations",
	})
	require.NoError(t, err)

	app, err := svc.Apply(ctx, job.ID.String(), domain.ApplyRequest{
		Name:  "Sara",
		Email: "sara@example.com",
		CVURL: "https://cdn.example.com/cv.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, job.ID, app.JobID)

	apps, err := svc.ListApplications(ctx, job.ID.String())
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestApply_ClosedStatus(t *testing.T) {
	svc, _ := setupCareerService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, domain.UpsertJobRequest{
		Title:  localized.FromString("Driver"),
		Status: domain.JobClosed,
	})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, job.ID.String(), domain.ApplyRequest{
		Name: "Sara", Email: "sara@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrJobClosed)
}

func TestApply_PastDeadline(t *testing.T) {
	svc, fake := setupCareerService(t)
	ctx := context.Background()

	deadline := fake.Now().Add(24 * time.Hour)
	job, err := svc.CreateJob(ctx, domain.UpsertJobRequest{
		Title:    localized.FromString("Accountant"),
		Deadline: &deadline,
	})
	require.NoError(t, err)

	fake.Advance(48 * time.Hour)

	_, err = svc.Apply(ctx, job.ID.String(), domain.ApplyRequest{
		Name: "Sara", Email: "sara@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrJobClosed)
}

func TestListOpenJobs_ExcludesExpired(t *testing.T) {
	svc, fake := setupCareerService(t)
	ctx := context.Background()

	deadline := fake.Now().Add(time.Hour)
	_, err := svc.CreateJob(ctx, domain.UpsertJobRequest{
		Title:    localized.FromString("Expiring"),
		Deadline: &deadline,
	})
	require.NoError(t, err)

	evergreen, err := svc.CreateJob(ctx, domain.UpsertJobRequest{
		Title: localized.FromString("Evergreen"),
	})
	require.NoError(t, err)

	fake.Advance(2 * time.Hour)

	open, err := svc.ListOpenJobs(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, evergreen.ID, open[0].ID)

	all, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteJob_RemovesApplications(t *testing.T) {
	svc, _ := setupCareerService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, domain.UpsertJobRequest{
		Title: localized.FromString("Dispatcher"),
	})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, job.ID.String(), domain.ApplyRequest{
		Name: "Sara", Email: "sara@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJob(ctx, job.ID.String()))

	apps, err := svc.ListApplications(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, apps)
}
