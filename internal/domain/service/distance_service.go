package service

import (
	"context"
	"fmt"

	"quickeats/internal/domain/entity"
)

// Upstream status values produced locally rather than by the provider.
const (
	UpstreamStatusTimeout     = "TIMEOUT"
	UpstreamStatusUnavailable = "UNAVAILABLE"
	UpstreamStatusUnknown     = "UNKNOWN"
)

// DistanceResult is a road distance and travel time between two points.
type DistanceResult struct {
	DistanceMeters  int64
	DurationSeconds int64
}

// UpstreamError means the provider returned no usable distance/duration pair.
// Status carries the provider's element status (e.g. ZERO_RESULTS) or a local one.
type UpstreamError struct {
	Provider string
	Status   string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s distance lookup failed with status %s: %v", e.Provider, e.Status, e.Err)
	}

	return fmt.Sprintf("%s distance lookup failed with status %s", e.Provider, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// DistanceService looks up the travel distance and duration between two points.
// Implementations make exactly one upstream call and never retry.
type DistanceService interface {
	// Lookup returns the distance from origin to destination, or an *UpstreamError.
	Lookup(ctx context.Context, origin, destination entity.Coordinate) (*DistanceResult, error)

	// Name identifies the provider in logs and metrics.
	Name() string
}
