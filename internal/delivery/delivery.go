// Package delivery holds the inbound transports of the service.
package delivery

import (
	"context"
	"net/http"
)

// Delivery is a transport that serves until its listener is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}

// MetricsHandler exposes a Prometheus registry over HTTP.
type MetricsHandler interface {
	Handler() http.Handler
}
