package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/career/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertJob(ctx context.Context, db *gorm.DB, job *domain.Job) error {
	return db.WithContext(ctx).Create(job).Error
}

func (r *repo) UpdateJob(ctx context.Context, db *gorm.DB, job *domain.Job) error {
	return db.WithContext(ctx).Save(job).Error
}

func (r *repo) DeleteJob(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&domain.Application{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Job{}).Error
	})
}

func (r *repo) FindJobByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Job, error) {
	var job domain.Job
	err := db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *repo) ListJobs(ctx context.Context, db *gorm.DB) ([]*domain.Job, error) {
	var jobs []*domain.Job
	err := db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *repo) InsertApplication(ctx context.Context, db *gorm.DB, app *domain.Application) error {
	return db.WithContext(ctx).Create(app).Error
}

func (r *repo) DeleteApplication(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Application{}).Error
}

func (r *repo) FindApplicationByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Application, error) {
	var app domain.Application
	err := db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *repo) ListApplications(ctx context.Context, db *gorm.DB, jobID snowflake.ID) ([]*domain.Application, error) {
	q := db.WithContext(ctx).Model(&domain.Application{})
	if jobID != 0 {
		q = q.Where("job_id = ?", jobID)
	}
	var apps []*domain.Application
	if err := q.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}
