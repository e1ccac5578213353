package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertDepartment(ctx context.Context, db *gorm.DB, dept *Department) error
	UpdateDepartment(ctx context.Context, db *gorm.DB, dept *Department) error
	DeleteDepartment(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindDepartmentByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Department, error)
	ListDepartments(ctx context.Context, db *gorm.DB) ([]*Department, error)
	CountSectionsInDepartment(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)

	InsertSection(ctx context.Context, db *gorm.DB, section *Section) error
	UpdateSection(ctx context.Context, db *gorm.DB, section *Section) error
	DeleteSection(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindSectionByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Section, error)
	ListSections(ctx context.Context, db *gorm.DB) ([]*Section, error)
	CountTitlesInSection(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)

	InsertTitle(ctx context.Context, db *gorm.DB, title *Title) error
	UpdateTitle(ctx context.Context, db *gorm.DB, title *Title) error
	DeleteTitle(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindTitleByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Title, error)
	ListTitles(ctx context.Context, db *gorm.DB) ([]*Title, error)
	CountEmployeesWithTitle(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)

	InsertEmployee(ctx context.Context, db *gorm.DB, employee *Employee) error
	UpdateEmployee(ctx context.Context, db *gorm.DB, employee *Employee) error
	DeleteEmployee(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindEmployeeByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Employee, error)
	ListEmployees(ctx context.Context, db *gorm.DB) ([]*Employee, error)
	ClearManager(ctx context.Context, db *gorm.DB, managerID snowflake.ID) error
}
