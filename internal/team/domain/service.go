package domain

import (
	"context"
	"errors"

	"github.com/gulfbridge/portal/pkg/localized"
)

type UpsertDepartmentRequest struct {
	Name localized.Text `json:"name"`
}

type UpsertSectionRequest struct {
	DepartmentID string         `json:"departmentId"`
	Name         localized.Text `json:"name"`
}

type UpsertTitleRequest struct {
	SectionID string         `json:"sectionId"`
	Name      localized.Text `json:"name"`
	Level     Level          `json:"level"`
}

type UpsertEmployeeRequest struct {
	TitleID   string         `json:"titleId"`
	ManagerID *string        `json:"managerId"`
	Name      localized.Text `json:"name"`
	PhotoURL  string         `json:"photoUrl"`
}

type Service interface {
	ListDepartments(ctx context.Context) ([]*Department, error)
	CreateDepartment(ctx context.Context, req UpsertDepartmentRequest) (*Department, error)
	UpdateDepartment(ctx context.Context, id string, req UpsertDepartmentRequest) (*Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListSections(ctx context.Context) ([]*Section, error)
	CreateSection(ctx context.Context, req UpsertSectionRequest) (*Section, error)
	UpdateSection(ctx context.Context, id string, req UpsertSectionRequest) (*Section, error)
	DeleteSection(ctx context.Context, id string) error

	ListTitles(ctx context.Context) ([]*Title, error)
	CreateTitle(ctx context.Context, req UpsertTitleRequest) (*Title, error)
	UpdateTitle(ctx context.Context, id string, req UpsertTitleRequest) (*Title, error)
	DeleteTitle(ctx context.Context, id string) error

	ListEmployees(ctx context.Context) ([]*Employee, error)
	CreateEmployee(ctx context.Context, req UpsertEmployeeRequest) (*Employee, error)
	UpdateEmployee(ctx context.Context, id string, req UpsertEmployeeRequest) (*Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	OrgChart(ctx context.Context) (*OrgChart, error)
}

var (
	ErrNotFound      = errors.New("team_record_not_found")
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidName   = errors.New("name_required")
	ErrInvalidLevel  = errors.New("invalid_title_level")
	ErrUnknownParent = errors.New("parent_record_not_found")
	ErrRecordInUse   = errors.New("record_in_use")
)
