package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
	"github.com/emergency-locator/internal/pkg/errors"
	"github.com/emergency-locator/internal/pkg/utils"
	"github.com/emergency-locator/internal/usecase/dto"
)

// RoutingUseCase composes the facility locator and the directions provider
// into one request cycle. Each stage failure is terminal: there is no retry
// and no fallback to the second-nearest facility when routing fails.
type RoutingUseCase struct {
	locator    *ServiceUseCase
	directions repository.DirectionsRepository
	logger     *zap.Logger
}

func NewRoutingUseCase(
	locator *ServiceUseCase,
	directions repository.DirectionsRepository,
	logger *zap.Logger,
) *RoutingUseCase {
	return &RoutingUseCase{
		locator:    locator,
		directions: directions,
		logger:     logger,
	}
}

// RouteToNearestService validates the caller's point, resolves the nearest
// facility and fetches a route to it.
func (uc *RoutingUseCase) RouteToNearestService(ctx context.Context, lon, lat float64) (*dto.RouteToServiceResponse, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	nearest, err := uc.locator.FindNearest(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	userPoint := domain.Coordinate{Lon: lon, Lat: lat}
	servicePoint := domain.Coordinate{Lon: nearest.Lon, Lat: nearest.Lat}

	route, err := uc.directions.GetRoute(ctx, userPoint, servicePoint)
	if err != nil {
		if err != errors.ErrNoRouteFound {
			uc.logger.Error("Route fetch to nearest service failed",
				zap.Int64("service_id", nearest.ID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return &dto.RouteToServiceResponse{
		UserLocation:   userPoint,
		NearestService: nearest,
		Route:          route,
	}, nil
}

// GetRoute fetches a route between two explicit points through the same
// normalized contract.
func (uc *RoutingUseCase) GetRoute(ctx context.Context, req dto.RouteRequest) (*domain.Route, error) {
	if !utils.ValidateCoordinates(req.StartLat, req.StartLon) ||
		!utils.ValidateCoordinates(req.EndLat, req.EndLon) {
		return nil, errors.ErrInvalidCoordinates
	}

	route, err := uc.directions.GetRoute(ctx,
		domain.Coordinate{Lon: req.StartLon, Lat: req.StartLat},
		domain.Coordinate{Lon: req.EndLon, Lat: req.EndLat},
	)
	if err != nil {
		if err != errors.ErrNoRouteFound {
			uc.logger.Error("Route fetch failed", zap.Error(err))
		}
		return nil, err
	}

	return route, nil
}
