package distance

import (
	"context"
	"log/slog"
	"time"

	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
)

const lookupStatusOK = "OK"

// instrumentedService bounds every lookup by a timeout and records its latency.
type instrumentedService struct {
	next    service.DistanceService
	timeout time.Duration
	metrics service.DistanceMetrics
	logger  *slog.Logger
}

// NewInstrumentedService wraps next with a per-lookup timeout and metrics.
func NewInstrumentedService(next service.DistanceService, timeout time.Duration, metrics service.DistanceMetrics, logger *slog.Logger) service.DistanceService {
	return &instrumentedService{
		next:    next,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *instrumentedService) Name() string {
	return s.next.Name()
}

func (s *instrumentedService) Lookup(ctx context.Context, origin, destination entity.Coordinate) (*service.DistanceResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := s.next.Lookup(ctx, origin, destination)
	elapsed := time.Since(start)

	status := lookupStatusOK
	if err != nil {
		status = service.UpstreamStatusUnknown

		var upstreamErr *service.UpstreamError
		if errors.As(err, &upstreamErr) {
			status = upstreamErr.Status
		}

		s.logger.WarnContext(ctx, "Distance lookup failed",
			slog.String("provider", s.next.Name()),
			slog.String("status", status),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)
	}

	if s.metrics != nil {
		s.metrics.ObserveDistanceLookup(s.next.Name(), status, elapsed)
	}

	return result, err
}
