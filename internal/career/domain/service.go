package domain

import (
	"context"
	"errors"
	"time"

	"github.com/gulfbridge/portal/pkg/localized"
)

type UpsertJobRequest struct {
	Title       localized.Text `json:"title"`
	Department  string         `json:"department"`
	Type        string         `json:"type"`
	Location    string         `json:"location"`
	Description localized.Text `json:"description"`
	Deadline    *time.Time     `json:"deadline"`
	Status      JobStatus      `json:"status"`
}

type ApplyRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	CVURL string `json:"cvUrl"`
}

type Service interface {
	// ListOpenJobs returns roles still accepting applications.
	ListOpenJobs(ctx context.Context) ([]*Job, error)
	ListJobs(ctx context.Context) ([]*Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	CreateJob(ctx context.Context, req UpsertJobRequest) (*Job, error)
	UpdateJob(ctx context.Context, id string, req UpsertJobRequest) (*Job, error)
	DeleteJob(ctx context.Context, id string) error

	// Apply rejects applications to jobs that are closed or past deadline.
	Apply(ctx context.Context, jobID string, req ApplyRequest) (*Application, error)
	ListApplications(ctx context.Context, jobID string) ([]*Application, error)
	DeleteApplication(ctx context.Context, id string) error
}

var (
	ErrJobNotFound         = errors.New("job_not_found")
	ErrApplicationNotFound = errors.New("application_not_found")
	ErrInvalidID           = errors.New("invalid_id")
	ErrInvalidTitle        = errors.New("title_required")
	ErrInvalidStatus       = errors.New("invalid_job_status")
	ErrInvalidName         = errors.New("name_required")
	ErrInvalidEmail        = errors.New("email_required")
	ErrJobClosed           = errors.New("job_closed")
)
