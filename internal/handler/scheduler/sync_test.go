//go:build unit

package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"stayhub/internal/handler/scheduler"
	"stayhub/internal/usecase/queries"
	commandsmock "stayhub/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSyncScheduler_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockCalendarSyncCommands(ctrl)

	cmds.EXPECT().SyncAllActiveImports(gomock.Any()).Return(queries.SyncSummaryView{Synced: 2, Errors: 1})
	scheduler.NewSyncScheduler(cmds, time.Minute).RunOnce(context.Background())
}

func TestSyncScheduler_RunOnceRecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockCalendarSyncCommands(ctrl)

	cmds.EXPECT().SyncAllActiveImports(gomock.Any()).DoAndReturn(func(context.Context) queries.SyncSummaryView {
		panic("boom")
	})
	assert.NotPanics(t, func() {
		scheduler.NewSyncScheduler(cmds, time.Minute).RunOnce(context.Background())
	})
}

func TestSyncScheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockCalendarSyncCommands(ctrl)

	var passes atomic.Int32
	cmds.EXPECT().SyncAllActiveImports(gomock.Any()).DoAndReturn(func(context.Context) queries.SyncSummaryView {
		passes.Add(1)
		return queries.SyncSummaryView{}
	}).MinTimes(1)

	s := scheduler.NewSyncScheduler(cmds, 10*time.Millisecond)
	s.Start(context.Background())
	s.Start(context.Background())

	require.Eventually(t, func() bool { return passes.Load() >= 2 }, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))

	after := passes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, passes.Load())

	assert.NoError(t, s.Stop(stopCtx))
}

func TestSyncScheduler_NonPositiveIntervalNeverRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockCalendarSyncCommands(ctrl)

	s := scheduler.NewSyncScheduler(cmds, 0)
	s.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	assert.NoError(t, s.Stop(context.Background()))
}
