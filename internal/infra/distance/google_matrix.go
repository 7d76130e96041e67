// Package distance provides road distance and travel time lookups.
package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"quickeats/internal/domain/constants"
	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
)

const (
	distanceMatrixPath    = "/maps/api/distancematrix/json"
	defaultMatrixEndpoint = "https://maps.googleapis.com" + distanceMatrixPath
	statusOK              = "OK"
)

// matrixResponse is the subset of the Distance Matrix payload we read.
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []matrixElement `json:"elements"`
	} `json:"rows"`
}

type matrixElement struct {
	Status   string       `json:"status"`
	Distance *matrixValue `json:"distance"`
	Duration *matrixValue `json:"duration"`
}

type matrixValue struct {
	Value int64 `json:"value"`
}

// googleMatrixService queries the Google Distance Matrix API.
type googleMatrixService struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewGoogleMatrixService creates a Distance Matrix client. endpoint is the
// full JSON endpoint URL; empty means the public Google endpoint.
func NewGoogleMatrixService(endpoint, apiKey string, httpClient *http.Client) service.DistanceService {
	if endpoint == "" {
		endpoint = defaultMatrixEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &googleMatrixService{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (s *googleMatrixService) Name() string {
	return constants.DistanceProviderGoogle
}

// Lookup issues one Distance Matrix request from origin to destination.
func (s *googleMatrixService) Lookup(ctx context.Context, origin, destination entity.Coordinate) (*service.DistanceResult, error) {
	target, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, s.upstreamError(service.UpstreamStatusUnknown, errors.Wrap(err, "invalid distance matrix endpoint"))
	}
	query := target.Query()
	query.Set("origins", formatCoordinate(origin))
	query.Set("destinations", formatCoordinate(destination))
	query.Set("key", s.apiKey)
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, s.upstreamError(service.UpstreamStatusUnknown, errors.WithStack(err))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, s.upstreamError(transportStatus(ctx, err), errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, s.upstreamError(service.UpstreamStatusUnavailable, errors.Errorf("distance matrix returned http status %d", resp.StatusCode))
	}

	var payload matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, s.upstreamError(transportStatus(ctx, err), errors.Wrap(err, "failed to decode distance matrix response"))
	}

	if payload.Status != "" && payload.Status != statusOK {
		return nil, s.upstreamError(payload.Status, nil)
	}
	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return nil, s.upstreamError(service.UpstreamStatusUnknown, nil)
	}

	element := payload.Rows[0].Elements[0]
	if element.Status != statusOK || element.Distance == nil || element.Duration == nil {
		status := element.Status
		if status == "" || status == statusOK {
			status = service.UpstreamStatusUnknown
		}

		return nil, s.upstreamError(status, nil)
	}

	return &service.DistanceResult{
		DistanceMeters:  element.Distance.Value,
		DurationSeconds: element.Duration.Value,
	}, nil
}

func (s *googleMatrixService) upstreamError(status string, err error) error {
	return &service.UpstreamError{Provider: s.Name(), Status: status, Err: err}
}

func formatCoordinate(c entity.Coordinate) string {
	return fmt.Sprintf("%s,%s",
		strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		strconv.FormatFloat(c.Longitude, 'f', -1, 64),
	)
}

// transportStatus classifies a failed round trip as a timeout or an outage.
func transportStatus(ctx context.Context, err error) string {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return service.UpstreamStatusTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return service.UpstreamStatusTimeout
	}

	return service.UpstreamStatusUnavailable
}
