package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/team/domain"
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
		log:   p.Log.Named("team.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func parseID(id string) (snowflake.ID, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return parsed, nil
}

func validLevel(l domain.Level) bool {
	switch l {
	case domain.LevelTop, domain.LevelExecutive, domain.LevelManagement, domain.LevelStaff:
		return true
	}
	return false
}

func (s *Service) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	return s.repo.ListDepartments(ctx, s.db)
}

func (s *Service) CreateDepartment(ctx context.Context, req domain.UpsertDepartmentRequest) (*domain.Department, error) {
	if req.Name.IsZero() {
		return nil, domain.ErrInvalidName
	}
	now := s.clock.Now()
	dept := &domain.Department{
		ID:        s.genID.Generate(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertDepartment(ctx, s.db, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id string, req domain.UpsertDepartmentRequest) (*domain.Department, error) {
	deptID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	dept, err := s.repo.FindDepartmentByID(ctx, s.db, deptID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}
	if req.Name.IsZero() {
		return nil, domain.ErrInvalidName
	}
	dept.Name = req.Name
	dept.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateDepartment(ctx, s.db, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	deptID, err := parseID(id)
	if err != nil {
		return err
	}
	dept, err := s.repo.FindDepartmentByID(ctx, s.db, deptID)
	if err != nil {
		return err
	}
	if dept == nil {
		return domain.ErrNotFound
	}
	count, err := s.repo.CountSectionsInDepartment(ctx, s.db, deptID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrRecordInUse
	}
	return s.repo.DeleteDepartment(ctx, s.db, deptID)
}

func (s *Service) ListSections(ctx context.Context) ([]*domain.Section, error) {
	return s.repo.ListSections(ctx, s.db)
}

func (s *Service) CreateSection(ctx context.Context, req domain.UpsertSectionRequest) (*domain.Section, error) {
	if req.Name.IsZero() {
		return nil, domain.ErrInvalidName
	}
	deptID, err := parseID(req.DepartmentID)
	if err != nil {
		return nil, err
	}
	dept, err := s.repo.FindDepartmentByID(ctx, s.db, deptID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrUnknownParent
	}

	now := s.clock.Now()
	section := &domain.Section{
		ID:           s.genID.Generate(),
		DepartmentID: deptID,
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.InsertSection(ctx, s.db, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *Service) UpdateSection(ctx context.Context, id string, req domain.UpsertSectionRequest) (*domain.Section, error) {
	sectionID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	section, err := s.repo.FindSectionByID(ctx, s.db, sectionID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, domain.ErrNotFound
	}
	if req.Name.IsZero() {
		return nil, domain.ErrInvalidName
	}
	if req.DepartmentID != "" {
		deptID, err := parseID(req.DepartmentID)
		if err != nil {
			return nil, err
		}
		dept, err := s.repo.FindDepartmentByID(ctx, s.db, deptID)
		if err != nil {
			return nil, err
		}
		if dept == nil {
			return nil, domain.ErrUnknownParent
		}
		section.DepartmentID = deptID
	}
	section.Name = req.Name
	section.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateSection(ctx, s.db, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *Service) DeleteSection(ctx context.Context, id string) error {
	sectionID, err := parseID(id)
	if err != nil {
		return err
	}
	section, err := s.repo.FindSectionByID(ctx, s.db, sectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return domain.ErrNotFound
	}
	count, err := s.repo.CountTitlesInSection(ctx, s.db, sectionID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrRecordInUse
	}
	return s.repo.DeleteSection(ctx, s.db, sectionID)
}

func (s *Service) ListTitles(ctx context.Context) ([]*domain.Title, error) {
	return s.repo.ListTitles(ctx, s.db)
}

func (s *Service) CreateTitle(ctx context.Context, req domain.UpsertTitleRequest) (*domain.Title, error) {
	if req.Name.IsZero() {
		return nil, domain.ErrInvalidName
	}
	if !validLevel(req.Level) {
		return nil, domain.ErrInvalidLevel
	}
	sectionID, err := parseID(req.SectionID)
	if err != nil {
		return nil, err
	}
	section, err := s.repo.FindSectionByID(ctx, s.db, sectionID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, domain.ErrUnknownParent
	}

	now := s.clock.Now()
	title := &domain.Title{
		ID:        s.genID.Generate(),
		SectionID: sectionID,
		Name:      req.Name,
		Level:     req.Level,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertTitle(ctx, s.db, title); err != nil {
		return nil, err
	}
	return title, nil
}

func (s *Service) UpdateTitle(ctx context.Context, id string, req domain.UpsertTitleRequest) (*domain.Title, error) {
	titleID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	title, err := s.repo.FindTitleByID(ctx, s.db, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, domain.ErrNotFound
	}
	if req.Name.IsZero() {
		return nil, domain.ErrInvalidName
	}
	if !validLevel(req.Level) {
		return nil, domain.ErrInvalidLevel
	}
	if req.SectionID != "" {
		sectionID, err := parseID(req.SectionID)
		if err != nil {
			return nil, err
		}
		section, err := s.repo.FindSectionByID(ctx, s.db, sectionID)
		if err != nil {
			return nil, err
		}
		if section == nil {
			return nil, domain.ErrUnknownParent
		}
		title.SectionID = sectionID
	}
	title.Name = req.Name
	title.Level = req.Level
	title.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateTitle(ctx, s.db, title); err != nil {
		return nil, err
	}
	return title, nil
}

func (s *Service) DeleteTitle(ctx context.Context, id string) error {
	titleID, err := parseID(id)
	if err != nil {
		return err
	}
	title, err := s.repo.FindTitleByID(ctx, s.db, titleID)
	if err != nil {
		return err
	}
	if title == nil {
		return domain.ErrNotFound
	}
	count, err := s.repo.CountEmployeesWithTitle(ctx, s.db, titleID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrRecordInUse
	}
	return s.repo.DeleteTitle(ctx, s.db, titleID)
}

func (s *Service) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.ListEmployees(ctx, s.db)
}

func (s *Service) CreateEmployee(ctx context.Context, req domain.UpsertEmployeeRequest) (*domain.Employee, error) {
	if req.Name.IsZero() {
		return nil, domain.ErrInvalidName
	}
	titleID, err := parseID(req.TitleID)
	if err != nil {
		return nil, err
	}
	title, err := s.repo.FindTitleByID(ctx, s.db, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, domain.ErrUnknownParent
	}

	managerID, err := s.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	employee := &domain.Employee{
		ID:        s.genID.Generate(),
		TitleID:   titleID,
		ManagerID: managerID,
		Name:      req.Name,
		PhotoURL:  strings.TrimSpace(req.PhotoURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertEmployee(ctx, s.db, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, req domain.UpsertEmployeeRequest) (*domain.Employee, error) {
	employeeID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	employee, err := s.repo.FindEmployeeByID(ctx, s.db, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if req.Name.IsZero() {
		return nil, domain.ErrInvalidName
	}
	if req.TitleID != "" {
		titleID, err := parseID(req.TitleID)
		if err != nil {
			return nil, err
		}
		title, err := s.repo.FindTitleByID(ctx, s.db, titleID)
		if err != nil {
			return nil, err
		}
		if title == nil {
			return nil, domain.ErrUnknownParent
		}
		employee.TitleID = titleID
	}

	managerID, err := s.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}
	employee.ManagerID = managerID
	employee.Name = req.Name
	employee.PhotoURL = strings.TrimSpace(req.PhotoURL)
	employee.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateEmployee(ctx, s.db, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	employeeID, err := parseID(id)
	if err != nil {
		return err
	}
	employee, err := s.repo.FindEmployeeByID(ctx, s.db, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	// Reports of the removed employee float up to the root group.
	if err := s.repo.ClearManager(ctx, s.db, employeeID); err != nil {
		return err
	}
	return s.repo.DeleteEmployee(ctx, s.db, employeeID)
}

func (s *Service) OrgChart(ctx context.Context) (*domain.OrgChart, error) {
	employees, err := s.repo.ListEmployees(ctx, s.db)
	if err != nil {
		return nil, err
	}
	titles, err := s.repo.ListTitles(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return domain.BuildOrgChart(employees, titles), nil
}

// resolveManager maps an optional manager reference to a stored ID. An empty
// string explicitly clears the manager.
func (s *Service) resolveManager(ctx context.Context, ref *string) (*snowflake.ID, error) {
	if ref == nil || strings.TrimSpace(*ref) == "" {
		return nil, nil
	}
	managerID, err := parseID(*ref)
	if err != nil {
		return nil, err
	}
	manager, err := s.repo.FindEmployeeByID(ctx, s.db, managerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrUnknownParent
	}
	return &managerID, nil
}
