package quote

import (
	"github.com/gulfbridge/portal/internal/quote/repository"
	"github.com/gulfbridge/portal/internal/quote/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quote.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
