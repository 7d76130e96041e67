package sms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickeats/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClickSend(t *testing.T, handler http.HandlerFunc) *clickSendService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewClickSendService(&config.Config{SMS: &config.SMSConfig{
		BaseURL:  server.URL + "/",
		Username: "quickeats",
		APIKey:   "secret",
		Source:   "QuickEats",
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return svc.(*clickSendService)
}

func TestClickSendService_Send(t *testing.T) {
	var captured clickSendRequest
	svc := newTestClickSend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sms/send", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "quickeats", user)
		assert.Equal(t, "secret", pass)

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	})

	err := svc.Send(context.Background(), "94771234567", "Your OTP is: 123456")

	require.NoError(t, err)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, clickSendMessage{Source: "QuickEats", Body: "Your OTP is: 123456", To: "+94771234567"}, captured.Messages[0])
}

func TestClickSendService_GatewayError(t *testing.T) {
	svc := newTestClickSend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"response_code":"UNAUTHORIZED"}`)
	})

	err := svc.Send(context.Background(), "94771234567", "Your OTP is: 123456")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}

func TestNewClickSendService_RequiresCredentials(t *testing.T) {
	_, err := NewClickSendService(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestMaskMobile(t *testing.T) {
	assert.Equal(t, "********567", maskMobile("94771234567"))
	assert.Equal(t, "12", maskMobile("12"))
}
