package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/career/domain"
	"github.com/gulfbridge/portal/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("career.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) ListOpenJobs(ctx context.Context) ([]*domain.Job, error) {
	jobs, err := s.repo.ListJobs(ctx, s.db)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	open := make([]*domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if !job.EffectivelyClosed(now) {
			open = append(open, job)
		}
	}
	return open, nil
}

func (s *Service) ListJobs(ctx context.Context) ([]*domain.Job, error) {
	return s.repo.ListJobs(ctx, s.db)
}

func (s *Service) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	jobID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	job, err := s.repo.FindJobByID(ctx, s.db, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

func (s *Service) CreateJob(ctx context.Context, req domain.UpsertJobRequest) (*domain.Job, error) {
	if req.Title.IsZero() {
		return nil, domain.ErrInvalidTitle
	}
	status := req.Status
	if status == "" {
		status = domain.JobOpen
	}
	if status != domain.JobOpen && status != domain.JobClosed {
		return nil, domain.ErrInvalidStatus
	}

	now := s.clock.Now()
	job := &domain.Job{
		ID:          s.genID.Generate(),
		Title:       req.Title,
		Department:  strings.TrimSpace(req.Department),
		Type:        strings.TrimSpace(req.Type),
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.InsertJob(ctx, s.db, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *Service) UpdateJob(ctx context.Context, id string, req domain.UpsertJobRequest) (*domain.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title.IsZero() {
		return nil, domain.ErrInvalidTitle
	}
	if req.Status != "" && req.Status != domain.JobOpen && req.Status != domain.JobClosed {
		return nil, domain.ErrInvalidStatus
	}

	job.Title = req.Title
	job.Department = strings.TrimSpace(req.Department)
	job.Type = strings.TrimSpace(req.Type)
	job.Location = strings.TrimSpace(req.Location)
	job.Description = req.Description
	job.Deadline = req.Deadline
	if req.Status != "" {
		job.Status = req.Status
	}
	job.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateJob(ctx, s.db, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *Service) DeleteJob(ctx context.Context, id string) error {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteJob(ctx, s.db, job.ID)
}

func (s *Service) Apply(ctx context.Context, jobID string, req domain.ApplyRequest) (*domain.Application, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EffectivelyClosed(s.clock.Now()) {
		return nil, domain.ErrJobClosed
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}

	app := &domain.Application{
		ID:        s.genID.Generate(),
		JobID:     job.ID,
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		CVURL:     strings.TrimSpace(req.CVURL),
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.InsertApplication(ctx, s.db, app); err != nil {
		return nil, err
	}
	s.log.Info("job application received",
		zap.String("job_id", job.ID.String()), zap.String("application_id", app.ID.String()))
	return app, nil
}

func (s *Service) ListApplications(ctx context.Context, jobID string) ([]*domain.Application, error) {
	var id snowflake.ID
	if jobID != "" {
		parsed, err := snowflake.ParseString(jobID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		id = parsed
	}
	return s.repo.ListApplications(ctx, s.db, id)
}

func (s *Service) DeleteApplication(ctx context.Context, id string) error {
	appID, err := snowflake.ParseString(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	app, err := s.repo.FindApplicationByID(ctx, s.db, appID)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrApplicationNotFound
	}
	return s.repo.DeleteApplication(ctx, s.db, appID)
}
