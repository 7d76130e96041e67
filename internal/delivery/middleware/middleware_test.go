package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quickeats/config"
	deliverycontext "quickeats/internal/delivery/context"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)

	var fromCtx string
	e.GET("/", func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", fromCtx)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestID_ReplacesMalformedHeader(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, id := range []string{strings.Repeat("a", maxRequestIDLen+1), "bad id", "caf\u00e9"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, id)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, id, got)
		assert.Len(t, got, 36)
	}
}

func TestLogger_IncludesCustomer(t *testing.T) {
	logger, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/orders", func(c echo.Context) error {
		deliverycontext.SetCustomerID(c, 7)

		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Contains(t, buf.String(), `"customer_id":7`)
	assert.Contains(t, buf.String(), `"uri":"/orders"`)
}

func TestLogger_QuietOutsideDebugUnlessFailing(t *testing.T) {
	logger, buf := newBufferLogger()
	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), "boom")
}

func TestLogger_StatusFromError(t *testing.T) {
	logger, buf := newBufferLogger()
	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/shop/:id", func(c echo.Context) error { return domainerrors.ErrShopNotFound })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/shop/9", nil))

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":404`)
}
