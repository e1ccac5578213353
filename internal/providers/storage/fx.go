package storage

import "go.uber.org/fx"

var Module = fx.Module("providers.storage",
	fx.Provide(New),
)
