//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxQueries_QueuedJobs(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := memstore.New()
	store.AddJob("email", "booking_status_changed", []byte(`{"status":"paid"}`), now.Add(-time.Minute))
	store.AddJob("email", "booking_created", []byte(`{"booking_id":"b1"}`), now.Add(-time.Hour))
	store.AddJob("email", "booking_reminder", []byte(`{}`), now.Add(time.Hour))

	q := queries.NewOutboxQueries(store, clock.NewMockClock(now))

	jobs, err := q.QueuedJobs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "booking_created", jobs[0].Topic)
	assert.JSONEq(t, `{"booking_id":"b1"}`, string(jobs[0].Payload))
	assert.Equal(t, "booking_status_changed", jobs[1].Topic)

	jobs, err = q.QueuedJobs(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}
