package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/config"
	"github.com/gulfbridge/portal/internal/logger"
	"github.com/gulfbridge/portal/internal/metrics"
	"github.com/gulfbridge/portal/internal/migration"
	"github.com/gulfbridge/portal/internal/server"
	"github.com/gulfbridge/portal/pkg/db"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		config.Module,
		logger.Module,
		metrics.Module,
		clock.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		migration.Module,
		server.Module,
	).Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
