package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertJob(ctx context.Context, db *gorm.DB, job *Job) error
	UpdateJob(ctx context.Context, db *gorm.DB, job *Job) error
	DeleteJob(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindJobByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Job, error)
	ListJobs(ctx context.Context, db *gorm.DB) ([]*Job, error)

	InsertApplication(ctx context.Context, db *gorm.DB, app *Application) error
	DeleteApplication(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindApplicationByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Application, error)
	ListApplications(ctx context.Context, db *gorm.DB, jobID snowflake.ID) ([]*Application, error)
}
