package team

import (
	"github.com/gulfbridge/portal/internal/team/repository"
	"github.com/gulfbridge/portal/internal/team/service"
	"go.uber.org/fx"
)

var Module = fx.Module("team.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
