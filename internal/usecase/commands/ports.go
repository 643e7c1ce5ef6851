package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
)

// FeedFetcher downloads a remote iCal feed.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// SyncLocker guards a sync config against concurrent imports across processes.
// TryLock reports false when another holder owns the key.
type SyncLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context), ok bool, err error)
}

type Recorder interface {
	BookingCreated(unitID string)
	BookingConflict(reason string)
	BookingTransition(from, to booking.Status)
	SyncFinished(direction, outcome string, elapsed time.Duration)
	SyncImported(events int)
}

// NopRecorder discards all measurements.
type NopRecorder struct{}

func (NopRecorder) BookingCreated(string)                           {}
func (NopRecorder) BookingConflict(string)                          {}
func (NopRecorder) BookingTransition(booking.Status, booking.Status) {}
func (NopRecorder) SyncFinished(string, string, time.Duration)      {}
func (NopRecorder) SyncImported(int)                                {}
