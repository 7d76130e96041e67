// Package sms delivers OTP text messages through the ClickSend REST API.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"quickeats/config"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
)

const (
	defaultClickSendBaseURL = "https://rest.clicksend.com/v3"
	defaultSendTimeout      = 10 * time.Second
	sendPath                = "/sms/send"
)

type clickSendMessage struct {
	Source string `json:"source"`
	Body   string `json:"body"`
	To     string `json:"to"`
}

type clickSendRequest struct {
	Messages []clickSendMessage `json:"messages"`
}

// clickSendService implements SMSService against ClickSend.
type clickSendService struct {
	baseURL    string
	username   string
	apiKey     string
	source     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClickSendService creates the SMS client from the sms config section.
func NewClickSendService(cfg *config.Config, logger *slog.Logger) (service.SMSService, error) {
	if cfg.SMS == nil || cfg.SMS.Username == "" || cfg.SMS.APIKey == "" {
		return nil, errors.New("sms username and apiKey must be provided")
	}

	baseURL := strings.TrimRight(cfg.SMS.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultClickSendBaseURL
	}
	timeout := cfg.SMS.Timeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}

	return &clickSendService{
		baseURL:    baseURL,
		username:   cfg.SMS.Username,
		apiKey:     cfg.SMS.APIKey,
		source:     cfg.SMS.Source,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Send delivers message to a normalized mobile number (e.g. 94771234567).
func (s *clickSendService) Send(ctx context.Context, mobile, message string) error {
	body, err := json.Marshal(clickSendRequest{
		Messages: []clickSendMessage{{
			Source: s.source,
			Body:   message,
			To:     "+" + strings.TrimPrefix(mobile, "+"),
		}},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.username, s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach sms gateway")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("sms gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	s.logger.DebugContext(ctx, "SMS sent", slog.String("to", maskMobile(mobile)))

	return nil
}

// maskMobile keeps the last three digits only.
func maskMobile(mobile string) string {
	if len(mobile) <= 3 {
		return mobile
	}

	return strings.Repeat("*", len(mobile)-3) + mobile[len(mobile)-3:]
}
