package bootstrap

import (
	"context"

	"stayhub/internal/handler/scheduler"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewSyncScheduler,
	),
	fx.Invoke(startSyncScheduler),
)

func NewSyncScheduler(cmds commands.CalendarSyncCommands, cfg config.Config) *scheduler.SyncScheduler {
	return scheduler.NewSyncScheduler(cmds, cfg.Sync.TickInterval)
}

func startSyncScheduler(lc fx.Lifecycle, s *scheduler.SyncScheduler, cfg config.Config) {
	if !cfg.Sync.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context ends with OnStart; the loop lives until OnStop.
			s.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
