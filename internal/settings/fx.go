package settings

import (
	"github.com/gulfbridge/portal/internal/settings/repository"
	"github.com/gulfbridge/portal/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
