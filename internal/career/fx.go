package career

import (
	"github.com/gulfbridge/portal/internal/career/repository"
	"github.com/gulfbridge/portal/internal/career/service"
	"go.uber.org/fx"
)

var Module = fx.Module("career.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
