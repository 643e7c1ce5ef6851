//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra/metrics"
	"stayhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var _ commands.Recorder = (*metrics.Metrics)(nil)

func TestMetrics_Recorder(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.BookingCreated("unit-1")
	m.BookingCreated("unit-1")
	m.BookingConflict("dates occupied")
	m.BookingTransition(booking.StatusPending, booking.StatusConfirmed)
	m.SyncFinished("import", "ok", 150*time.Millisecond)
	m.SyncFinished("import", "error", time.Second)
	m.SyncImported(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("unit-1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflicts.WithLabelValues("dates occupied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingTransitions.WithLabelValues("pending", "confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRuns.WithLabelValues("import", "error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.ImportedEvents))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SyncDuration))
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/units/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/units/a", "/units/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/units/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
