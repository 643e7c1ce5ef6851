package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stayhub/internal/usecase/commands"
)

// SyncScheduler runs import passes on a fixed tick until stopped.
type SyncScheduler struct {
	cmds     commands.CalendarSyncCommands
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSyncScheduler(cmds commands.CalendarSyncCommands, interval time.Duration) *SyncScheduler {
	return &SyncScheduler{cmds: cmds, interval: interval}
}

// Start launches the loop in the background. A second Start while running is a no-op.
func (s *SyncScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	if s.interval <= 0 {
		slog.Warn("calendar sync scheduler disabled: non-positive interval", slog.Duration("interval", s.interval))
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(ctx, s.done)
	slog.Info("calendar sync scheduler started", slog.Duration("interval", s.interval))
}

// Stop cancels the running pass and waits for the loop to exit or ctx to expire.
func (s *SyncScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		slog.Info("calendar sync scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SyncScheduler) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single pass over every due import.
func (s *SyncScheduler) RunOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("calendar sync pass panicked", slog.Any("panic", r))
		}
	}()
	summary := s.cmds.SyncAllActiveImports(ctx)
	if summary.Errors > 0 {
		slog.Warn("calendar sync pass had failures",
			slog.Int("synced", summary.Synced),
			slog.Int("errors", summary.Errors))
	}
}
