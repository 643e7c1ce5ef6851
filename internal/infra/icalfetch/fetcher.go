package icalfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
)

const userAgent = "stayhub-calendar-sync/1.0"

var (
	ErrBadStatus    = errs.New("unexpected feed status")
	ErrFeedTooLarge = errs.New("feed exceeds size limit")
)

// Fetcher downloads external calendar feeds with a bounded timeout and size.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcher(cfg config.SyncConfig) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: cfg.FetchTimeout},
		maxBytes: cfg.MaxFeedBytes,
	}
}

func NewFetcherWithClient(client *http.Client, maxBytes int64) *Fetcher {
	return &Fetcher{client: client, maxBytes: maxBytes}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build feed request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/calendar, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "fetch feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Mark(fmt.Errorf("feed responded %d", resp.StatusCode), ErrBadStatus)
	}

	limit := f.maxBytes
	if limit <= 0 {
		limit = 5 << 20
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errs.Wrap(err, "read feed body")
	}
	if int64(len(body)) > limit {
		return nil, ErrFeedTooLarge
	}
	return body, nil
}
