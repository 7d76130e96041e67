package distance

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"quickeats/config"
	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testShop     = entity.Coordinate{Latitude: 6.9271, Longitude: 79.8612}
	testCustomer = entity.Coordinate{Latitude: 6.9, Longitude: 79.86}
)

func newMatrixServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, distanceMatrixPath, r.URL.Path)
		assert.Equal(t, "6.9271,79.8612", r.URL.Query().Get("origins"))
		assert.Equal(t, "6.9,79.86", r.URL.Query().Get("destinations"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestGoogleMatrixService_Lookup(t *testing.T) {
	server := newMatrixServer(t, http.StatusOK, `{
		"status": "OK",
		"rows": [{"elements": [{"status": "OK", "distance": {"value": 2000}, "duration": {"value": 600}}]}]
	}`)
	svc := NewGoogleMatrixService(server.URL+distanceMatrixPath, "test-key", server.Client())

	result, err := svc.Lookup(context.Background(), testShop, testCustomer)

	require.NoError(t, err)
	assert.Equal(t, int64(2000), result.DistanceMeters)
	assert.Equal(t, int64(600), result.DurationSeconds)
}

func TestGoogleMatrixService_Failures(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		body       string
		wantStatus string
	}{
		{
			name:       "zero results",
			httpStatus: http.StatusOK,
			body:       `{"status":"OK","rows":[{"elements":[{"status":"ZERO_RESULTS"}]}]}`,
			wantStatus: "ZERO_RESULTS",
		},
		{
			name:       "not found",
			httpStatus: http.StatusOK,
			body:       `{"status":"OK","rows":[{"elements":[{"status":"NOT_FOUND"}]}]}`,
			wantStatus: "NOT_FOUND",
		},
		{
			name:       "request denied",
			httpStatus: http.StatusOK,
			body:       `{"status":"REQUEST_DENIED","rows":[]}`,
			wantStatus: "REQUEST_DENIED",
		},
		{
			name:       "missing element",
			httpStatus: http.StatusOK,
			body:       `{"status":"OK","rows":[]}`,
			wantStatus: service.UpstreamStatusUnknown,
		},
		{
			name:       "ok without duration",
			httpStatus: http.StatusOK,
			body:       `{"status":"OK","rows":[{"elements":[{"status":"OK","distance":{"value":10}}]}]}`,
			wantStatus: service.UpstreamStatusUnknown,
		},
		{
			name:       "server error",
			httpStatus: http.StatusInternalServerError,
			body:       `oops`,
			wantStatus: service.UpstreamStatusUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newMatrixServer(t, tt.httpStatus, tt.body)
			svc := NewGoogleMatrixService(server.URL+distanceMatrixPath, "test-key", server.Client())

			result, err := svc.Lookup(context.Background(), testShop, testCustomer)

			assert.Nil(t, result)
			var upstreamErr *service.UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, tt.wantStatus, upstreamErr.Status)
			assert.Equal(t, "google", upstreamErr.Provider)
		})
	}
}

func TestGoogleMatrixService_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewInstrumentedService(
		NewGoogleMatrixService(server.URL+distanceMatrixPath, "test-key", server.Client()),
		50*time.Millisecond, nil, logger,
	)

	_, err := svc.Lookup(context.Background(), testShop, testCustomer)

	var upstreamErr *service.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, service.UpstreamStatusTimeout, upstreamErr.Status)
}

func TestGoogleMatrixService_ShippedEndpoint(t *testing.T) {
	cfg, err := config.LoadWithEnv[config.Config]("config", "../../../config")
	require.NoError(t, err)
	require.NotNil(t, cfg.Distance)

	server := newMatrixServer(t, http.StatusOK, `{
		"status": "OK",
		"rows": [{"elements": [{"status": "OK", "distance": {"value": 1500}, "duration": {"value": 300}}]}]
	}`)
	local, err := url.Parse(server.URL)
	require.NoError(t, err)

	endpoint, err := url.Parse(cfg.Distance.BaseURL)
	require.NoError(t, err)
	endpoint.Scheme, endpoint.Host = local.Scheme, local.Host

	result, err := NewGoogleMatrixService(endpoint.String(), "test-key", server.Client()).
		Lookup(context.Background(), testShop, testCustomer)

	require.NoError(t, err)
	assert.Equal(t, int64(1500), result.DistanceMeters)
}

func TestGoogleMatrixService_KeepsEndpointQuery(t *testing.T) {
	var language string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		language = r.URL.Query().Get("language")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = io.WriteString(w, `{"status":"OK","rows":[{"elements":[{"status":"OK","distance":{"value":1},"duration":{"value":1}}]}]}`)
	}))
	t.Cleanup(server.Close)

	_, err := NewGoogleMatrixService(server.URL+distanceMatrixPath+"?language=en", "test-key", server.Client()).
		Lookup(context.Background(), testShop, testCustomer)

	require.NoError(t, err)
	assert.Equal(t, "en", language)
}
