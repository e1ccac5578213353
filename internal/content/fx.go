package content

import (
	"github.com/gulfbridge/portal/internal/content/repository"
	"github.com/gulfbridge/portal/internal/content/service"
	"go.uber.org/fx"
)

var Module = fx.Module("content.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
