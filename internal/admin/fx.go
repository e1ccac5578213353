package admin

import (
	"github.com/gulfbridge/portal/internal/admin/repository"
	"github.com/gulfbridge/portal/internal/admin/service"
	"go.uber.org/fx"
)

var Module = fx.Module("admin.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
