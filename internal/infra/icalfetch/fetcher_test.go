//go:build unit

package icalfetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stayhub/internal/infra/icalfetch"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.ics":
			assert.Equal(t, "stayhub-calendar-sync/1.0", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "text/calendar")
			_, _ = w.Write([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
		case "/big.ics":
			_, _ = w.Write([]byte(strings.Repeat("X", 64)))
		case "/slow.ics":
			time.Sleep(200 * time.Millisecond)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	t.Run("returns the body", func(t *testing.T) {
		f := icalfetch.NewFetcher(config.SyncConfig{FetchTimeout: time.Second, MaxFeedBytes: 1024})
		body, err := f.Fetch(ctx, srv.URL+"/ok.ics")
		require.NoError(t, err)
		assert.Equal(t, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", string(body))
	})

	t.Run("non-2xx status", func(t *testing.T) {
		f := icalfetch.NewFetcher(config.SyncConfig{FetchTimeout: time.Second})
		_, err := f.Fetch(ctx, srv.URL+"/missing.ics")
		assert.True(t, errs.Is(err, icalfetch.ErrBadStatus), "got %v", err)
	})

	t.Run("body over the limit", func(t *testing.T) {
		f := icalfetch.NewFetcherWithClient(srv.Client(), 32)
		_, err := f.Fetch(ctx, srv.URL+"/big.ics")
		assert.ErrorIs(t, err, icalfetch.ErrFeedTooLarge)
	})

	t.Run("timeout", func(t *testing.T) {
		f := icalfetch.NewFetcher(config.SyncConfig{FetchTimeout: 20 * time.Millisecond})
		_, err := f.Fetch(ctx, srv.URL+"/slow.ics")
		assert.Error(t, err)
	})

	t.Run("invalid url", func(t *testing.T) {
		f := icalfetch.NewFetcher(config.SyncConfig{})
		_, err := f.Fetch(ctx, "://nope")
		assert.Error(t, err)
	})
}
