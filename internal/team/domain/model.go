// Package domain contains the company structure types behind the org chart.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/pkg/localized"
)

type Level string

const (
	LevelTop        Level = "top"
	LevelExecutive  Level = "executive"
	LevelManagement Level = "management"
	LevelStaff      Level = "staff"
)

// Rank orders levels for sibling sorting. Unknown levels sort last.
func (l Level) Rank() int {
	switch l {
	case LevelTop:
		return 1
	case LevelExecutive:
		return 2
	case LevelManagement:
		return 3
	case LevelStaff:
		return 4
	}
	return 5
}

type Department struct {
	ID        snowflake.ID   `gorm:"primaryKey" json:"id"`
	Name      localized.Text `gorm:"not null" json:"name"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Department) TableName() string { return "departments" }

type Section struct {
	ID           snowflake.ID   `gorm:"primaryKey" json:"id"`
	DepartmentID snowflake.ID   `gorm:"column:department_id;not null;index" json:"departmentId"`
	Name         localized.Text `gorm:"not null" json:"name"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Section) TableName() string { return "sections" }

type Title struct {
	ID        snowflake.ID   `gorm:"primaryKey" json:"id"`
	SectionID snowflake.ID   `gorm:"column:section_id;not null;index" json:"sectionId"`
	Name      localized.Text `gorm:"not null" json:"name"`
	Level     Level          `gorm:"type:text;not null" json:"level"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Title) TableName() string { return "titles" }

type Employee struct {
	ID        snowflake.ID   `gorm:"primaryKey" json:"id"`
	TitleID   snowflake.ID   `gorm:"column:title_id;not null;index" json:"titleId"`
	ManagerID *snowflake.ID  `gorm:"column:manager_id;index" json:"managerId"`
	Name      localized.Text `gorm:"not null" json:"name"`
	PhotoURL  string         `gorm:"column:photo_url;type:text" json:"photoUrl"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }
