// Package domain contains job posting and application types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/pkg/localized"
)

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

type Job struct {
	ID          snowflake.ID   `gorm:"primaryKey" json:"id"`
	Title       localized.Text `gorm:"not null" json:"title"`
	Department  string         `gorm:"type:text" json:"department"`
	Type        string         `gorm:"type:text" json:"type"`
	Location    string         `gorm:"type:text" json:"location"`
	Description localized.Text `json:"description"`
	Deadline    *time.Time     `json:"deadline"`
	Status      JobStatus      `gorm:"type:text;not null;default:open" json:"status"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }

// EffectivelyClosed reports whether the role no longer accepts applications,
// either explicitly or because the deadline passed.
func (j Job) EffectivelyClosed(now time.Time) bool {
	if j.Status == JobClosed {
		return true
	}
	return j.Deadline != nil && j.Deadline.Before(now)
}

type Application struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	JobID     snowflake.ID `gorm:"column:job_id;not null;index" json:"jobId"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Email     string       `gorm:"type:text;not null" json:"email"`
	Phone     string       `gorm:"type:text" json:"phone"`
	CVURL     string       `gorm:"column:cv_url;type:text" json:"cvUrl"`
	CreatedAt time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Application) TableName() string { return "applications" }
