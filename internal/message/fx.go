package message

import (
	"github.com/gulfbridge/portal/internal/message/repository"
	"github.com/gulfbridge/portal/internal/message/service"
	"go.uber.org/fx"
)

var Module = fx.Module("message.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
