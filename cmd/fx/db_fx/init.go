package db_fx

import (
	"go.uber.org/fx"

	"ruralplanner/internal/infra"
)

var Module = fx.Options(
	fx.Provide(infra.InitPostgresql),
	fx.Invoke(infra.AutoMigrate),
)
