package distance

import (
	"context"
	"math"

	"quickeats/internal/domain/constants"
	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// haversineService estimates road distance as the great-circle distance and
// travel time from a constant speed. It never calls out.
type haversineService struct {
	speedMetersPerSecond float64
}

// NewHaversineService creates an offline estimator travelling at speedKmh.
func NewHaversineService(speedKmh float64) service.DistanceService {
	return &haversineService{speedMetersPerSecond: speedKmh * 1000 / 3600}
}

func (s *haversineService) Name() string {
	return constants.DistanceProviderHaversine
}

func (s *haversineService) Lookup(ctx context.Context, origin, destination entity.Coordinate) (*service.DistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, &service.UpstreamError{Provider: s.Name(), Status: service.UpstreamStatusTimeout, Err: err}
	}

	meters := geo.DistanceHaversine(
		orb.Point{origin.Longitude, origin.Latitude},
		orb.Point{destination.Longitude, destination.Latitude},
	)

	return &service.DistanceResult{
		DistanceMeters:  int64(math.Round(meters)),
		DurationSeconds: int64(math.Round(meters / s.speedMetersPerSecond)),
	}, nil
}
