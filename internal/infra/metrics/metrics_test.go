package metrics

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := New()

	m.OrderPlaced("COD")
	m.OrderPlaced("COD")
	m.OrderPlacementFailed("UPSTREAM_FAILURE")
	m.NotificationDropped()
	m.PushSent("sent")
	m.ObserveDistanceLookup("google", "OK", 120*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.ordersPlaced.WithLabelValues("COD")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.placementFailures.WithLabelValues("UPSTREAM_FAILURE")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.notificationsDropped), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.pushesSent.WithLabelValues("sent")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `quickeats_orders_placed_total{payment_type="COD"} 2`))
	assert.True(t, strings.Contains(string(body), "quickeats_distance_lookup_duration_seconds_bucket"))
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	m := New()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.RegisterDBStats(db, "primary"))
	assert.Error(t, m.RegisterDBStats(db, "primary"), "duplicate registration must fail")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `go_sql_max_open_connections{db_name="primary"}`)
}
