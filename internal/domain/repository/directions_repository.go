package repository

import (
	"context"

	"github.com/emergency-locator/internal/domain"
)

// DirectionsRepository is the outbound boundary to an HTTP directions
// provider. Exactly one upstream call per invocation, bounded by the
// configured timeout; no retries and no fallback to another provider.
//
// A successful provider response with no path yields ErrNoRouteFound;
// timeouts, network failures and malformed payloads yield
// ErrRouteProviderUnavailable.
type DirectionsRepository interface {
	GetRoute(ctx context.Context, origin, destination domain.Coordinate) (*domain.Route, error)
}
