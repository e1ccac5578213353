package shipment

import (
	"github.com/gulfbridge/portal/internal/shipment/repository"
	"github.com/gulfbridge/portal/internal/shipment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("shipment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
