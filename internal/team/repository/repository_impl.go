package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/team/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func findByID[T any](ctx context.Context, db *gorm.DB, id snowflake.ID) (*T, error) {
	var rec T
	err := db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func listAll[T any](ctx context.Context, db *gorm.DB) ([]*T, error) {
	var recs []*T
	err := db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *repo) InsertDepartment(ctx context.Context, db *gorm.DB, dept *domain.Department) error {
	return db.WithContext(ctx).Create(dept).Error
}

func (r *repo) UpdateDepartment(ctx context.Context, db *gorm.DB, dept *domain.Department) error {
	return db.WithContext(ctx).Save(dept).Error
}

func (r *repo) DeleteDepartment(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Department{}).Error
}

func (r *repo) FindDepartmentByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Department, error) {
	return findByID[domain.Department](ctx, db, id)
}

func (r *repo) ListDepartments(ctx context.Context, db *gorm.DB) ([]*domain.Department, error) {
	return listAll[domain.Department](ctx, db)
}

func (r *repo) CountSectionsInDepartment(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Section{}).
		Where("department_id = ?", id).Count(&count).Error
	return count, err
}

func (r *repo) InsertSection(ctx context.Context, db *gorm.DB, section *domain.Section) error {
	return db.WithContext(ctx).Create(section).Error
}

func (r *repo) UpdateSection(ctx context.Context, db *gorm.DB, section *domain.Section) error {
	return db.WithContext(ctx).Save(section).Error
}

func (r *repo) DeleteSection(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Section{}).Error
}

func (r *repo) FindSectionByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Section, error) {
	return findByID[domain.Section](ctx, db, id)
}

func (r *repo) ListSections(ctx context.Context, db *gorm.DB) ([]*domain.Section, error) {
	return listAll[domain.Section](ctx, db)
}

func (r *repo) CountTitlesInSection(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Title{}).
		Where("section_id = ?", id).Count(&count).Error
	return count, err
}

func (r *repo) InsertTitle(ctx context.Context, db *gorm.DB, title *domain.Title) error {
	return db.WithContext(ctx).Create(title).Error
}

func (r *repo) UpdateTitle(ctx context.Context, db *gorm.DB, title *domain.Title) error {
	return db.WithContext(ctx).Save(title).Error
}

func (r *repo) DeleteTitle(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Title{}).Error
}

func (r *repo) FindTitleByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Title, error) {
	return findByID[domain.Title](ctx, db, id)
}

func (r *repo) ListTitles(ctx context.Context, db *gorm.DB) ([]*domain.Title, error) {
	return listAll[domain.Title](ctx, db)
}

func (r *repo) CountEmployeesWithTitle(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Employee{}).
		Where("title_id = ?", id).Count(&count).Error
	return count, err
}

func (r *repo) InsertEmployee(ctx context.Context, db *gorm.DB, employee *domain.Employee) error {
	return db.WithContext(ctx).Create(employee).Error
}

func (r *repo) UpdateEmployee(ctx context.Context, db *gorm.DB, employee *domain.Employee) error {
	return db.WithContext(ctx).Save(employee).Error
}

func (r *repo) DeleteEmployee(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Employee{}).Error
}

func (r *repo) FindEmployeeByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Employee, error) {
	return findByID[domain.Employee](ctx, db, id)
}

func (r *repo) ListEmployees(ctx context.Context, db *gorm.DB) ([]*domain.Employee, error) {
	return listAll[domain.Employee](ctx, db)
}

func (r *repo) ClearManager(ctx context.Context, db *gorm.DB, managerID snowflake.ID) error {
	return db.WithContext(ctx).Model(&domain.Employee{}).
		Where("manager_id = ?", managerID).
		Update("manager_id", nil).Error
}
