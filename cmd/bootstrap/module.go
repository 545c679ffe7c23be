package bootstrap

import (
	"book-manager/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SeedModule,
	RedisModule,
	TelemetryModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
