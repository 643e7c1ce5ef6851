package components

import (
	"stayhub/internal/infra/icalfetch"
	"stayhub/internal/infra/lock"
	"stayhub/internal/infra/metrics"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/commands"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			NewFeedFetcher,
			fx.As(new(commands.FeedFetcher)),
		),
		fx.Annotate(
			lock.NewRedisLocker,
			fx.As(new(commands.SyncLocker)),
		),
		func(m *metrics.Metrics) commands.Recorder { return m },
	),
)

func NewFeedFetcher(cfg config.Config) *icalfetch.Fetcher {
	return icalfetch.NewFetcher(cfg.Sync)
}
