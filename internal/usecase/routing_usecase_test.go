package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/pkg/errors"
	"github.com/emergency-locator/internal/usecase"
	"github.com/emergency-locator/internal/usecase/dto"
)

func newRoutingUseCase(services *MockServiceRepository, directions *MockDirectionsRepository) *usecase.RoutingUseCase {
	logger := zap.NewNop()
	locator := usecase.NewServiceUseCase(services, logger)
	return usecase.NewRoutingUseCase(locator, directions, logger)
}

func TestRoutingUseCase_RouteToNearestService(t *testing.T) {
	ctx := context.Background()

	nearest := &domain.NearestService{
		EmergencyService: domain.EmergencyService{
			ID:   1,
			Name: "Hospital Central",
			Type: domain.ServiceTypeHospital,
			Lon:  -9.23,
			Lat:  38.70,
		},
		DistanceMeters: 1450.8,
	}

	t.Run("composes location, nearest facility and route", func(t *testing.T) {
		services := new(MockServiceRepository)
		directions := new(MockDirectionsRepository)
		uc := newRoutingUseCase(services, directions)

		route := &domain.Route{
			DistanceMeters:  2700,
			DurationSeconds: 540,
			Geometry:        "_p~iF~ps|U_ulLnnqC",
			Steps: []domain.RouteStep{
				{Instruction: "Head west", DistanceMeters: 2700, DurationSeconds: 540},
			},
		}

		services.On("FindNearest", ctx, 38.71, -9.20).Return(nearest, nil)
		directions.On("GetRoute", ctx,
			domain.Coordinate{Lon: -9.20, Lat: 38.71},
			domain.Coordinate{Lon: -9.23, Lat: 38.70},
		).Return(route, nil)

		resp, err := uc.RouteToNearestService(ctx, -9.20, 38.71)

		require.NoError(t, err)
		assert.Equal(t, domain.Coordinate{Lon: -9.20, Lat: 38.71}, resp.UserLocation)
		assert.Equal(t, int64(1), resp.NearestService.ID)
		assert.Equal(t, 1450.8, resp.NearestService.DistanceMeters)
		assert.Equal(t, route, resp.Route)
		services.AssertExpectations(t)
		directions.AssertExpectations(t)
	})

	t.Run("invalid coordinates fail before any lookup", func(t *testing.T) {
		services := new(MockServiceRepository)
		directions := new(MockDirectionsRepository)
		uc := newRoutingUseCase(services, directions)

		resp, err := uc.RouteToNearestService(ctx, -9.20, 91.0)

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrInvalidCoordinates, err)
		services.AssertNotCalled(t, "FindNearest", mock.Anything, mock.Anything, mock.Anything)
		directions.AssertNotCalled(t, "GetRoute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no facilities means no route attempt", func(t *testing.T) {
		services := new(MockServiceRepository)
		directions := new(MockDirectionsRepository)
		uc := newRoutingUseCase(services, directions)

		services.On("FindNearest", ctx, 38.71, -9.20).Return(nil, errors.ErrNoServicesFound)

		resp, err := uc.RouteToNearestService(ctx, -9.20, 38.71)

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrNoServicesFound, err)
		directions.AssertNotCalled(t, "GetRoute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unroutable destination is terminal, no second-nearest fallback", func(t *testing.T) {
		services := new(MockServiceRepository)
		directions := new(MockDirectionsRepository)
		uc := newRoutingUseCase(services, directions)

		services.On("FindNearest", ctx, 38.71, -9.20).Return(nearest, nil)
		directions.On("GetRoute", ctx, mock.Anything, mock.Anything).Return(nil, errors.ErrNoRouteFound)

		resp, err := uc.RouteToNearestService(ctx, -9.20, 38.71)

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrNoRouteFound, err)
		services.AssertNumberOfCalls(t, "FindNearest", 1)
		directions.AssertNumberOfCalls(t, "GetRoute", 1)
	})

	t.Run("provider outage surfaces as unavailable", func(t *testing.T) {
		services := new(MockServiceRepository)
		directions := new(MockDirectionsRepository)
		uc := newRoutingUseCase(services, directions)

		services.On("FindNearest", ctx, 38.71, -9.20).Return(nearest, nil)
		directions.On("GetRoute", ctx, mock.Anything, mock.Anything).Return(nil, errors.ErrRouteProviderUnavailable)

		resp, err := uc.RouteToNearestService(ctx, -9.20, 38.71)

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrRouteProviderUnavailable, err)
	})
}

func TestRoutingUseCase_GetRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("routes between two explicit points", func(t *testing.T) {
		services := new(MockServiceRepository)
		directions := new(MockDirectionsRepository)
		uc := newRoutingUseCase(services, directions)

		route := &domain.Route{DistanceMeters: 980, DurationSeconds: 210}
		directions.On("GetRoute", ctx,
			domain.Coordinate{Lon: -9.14, Lat: 38.71},
			domain.Coordinate{Lon: -9.16, Lat: 38.75},
		).Return(route, nil)

		got, err := uc.GetRoute(ctx, dto.RouteRequest{
			StartLon: -9.14, StartLat: 38.71,
			EndLon: -9.16, EndLat: 38.75,
		})

		require.NoError(t, err)
		assert.Equal(t, route, got)
	})

	t.Run("either invalid endpoint fails fast", func(t *testing.T) {
		services := new(MockServiceRepository)
		directions := new(MockDirectionsRepository)
		uc := newRoutingUseCase(services, directions)

		_, err := uc.GetRoute(ctx, dto.RouteRequest{
			StartLon: -181, StartLat: 38.71,
			EndLon: -9.16, EndLat: 38.75,
		})
		assert.Equal(t, errors.ErrInvalidCoordinates, err)

		_, err = uc.GetRoute(ctx, dto.RouteRequest{
			StartLon: -9.14, StartLat: 38.71,
			EndLon: -9.16, EndLat: 95,
		})
		assert.Equal(t, errors.ErrInvalidCoordinates, err)

		directions.AssertNotCalled(t, "GetRoute", mock.Anything, mock.Anything, mock.Anything)
	})
}
