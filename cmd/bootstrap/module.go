package bootstrap

import (
	"stayhub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the full HTTP application graph.
var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
	SchedulerModule,
)

// CoreModule is everything below the HTTP layer; the CLI reuses it.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	MetricsModule,
	JWTModule,
	components.PersistenceModule,
	components.InfraModule,
	components.UseCaseModule,
)
