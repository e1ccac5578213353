package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/admin/domain"
	"github.com/gulfbridge/portal/internal/auth/password"
	pkgdb "github.com/gulfbridge/portal/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("admin.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Admin, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	admins := make([]domain.Admin, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		admin := *item
		admin.Permissions = admin.EffectivePermissions()
		admins = append(admins, admin)
	}
	return admins, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Admin{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Admin{}, err
	}
	if item == nil {
		return domain.Admin{}, domain.ErrNotFound
	}

	admin := *item
	admin.Permissions = admin.EffectivePermissions()
	return admin, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	item, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return domain.Admin{}, err
	}
	if item == nil {
		return domain.Admin{}, domain.ErrNotFound
	}

	admin := *item
	admin.Permissions = admin.EffectivePermissions()
	return admin, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateAdminRequest) (domain.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Admin{}, domain.ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return domain.Admin{}, domain.ErrInvalidPassword
	}
	role := req.Role
	if role == "" {
		role = domain.RoleAdmin
	}
	if role != domain.RoleAdmin && role != domain.RoleSuperAdmin {
		return domain.Admin{}, domain.ErrInvalidRole
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return domain.Admin{}, err
	}

	now := time.Now().UTC()
	admin := domain.Admin{
		ID:           s.genID.Generate(),
		Email:        email,
		Role:         role,
		Permissions:  domain.MergePermissions(req.Permissions, domain.DefaultPermissions(role)),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &admin); err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Admin{}, domain.ErrEmailTaken
		}
		return domain.Admin{}, err
	}

	s.log.Info("admin created", zap.String("email", admin.Email), zap.String("role", string(admin.Role)))
	return admin, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateAdminRequest) (domain.Admin, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Admin{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Admin{}, err
	}
	if item == nil {
		return domain.Admin{}, domain.ErrNotFound
	}
	admin := *item

	if req.Role != nil {
		role := *req.Role
		if role != domain.RoleAdmin && role != domain.RoleSuperAdmin {
			return domain.Admin{}, domain.ErrInvalidRole
		}
		admin.Role = role
	}
	if req.Permissions != nil {
		admin.Permissions = domain.MergePermissions(req.Permissions, domain.DefaultPermissions(admin.Role))
	}
	if req.Password != "" {
		if len(req.Password) < 8 {
			return domain.Admin{}, domain.ErrInvalidPassword
		}
		hash, err := password.Hash(req.Password)
		if err != nil {
			return domain.Admin{}, err
		}
		admin.PasswordHash = hash
	}
	admin.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, &admin); err != nil {
		return domain.Admin{}, err
	}

	admin.Permissions = admin.EffectivePermissions()
	return admin, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteAdminRequest) error {
	id, err := parseID(req.ID)
	if err != nil {
		return err
	}
	if req.ActorID != 0 && id == req.ActorID {
		return domain.ErrSelfDelete
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
