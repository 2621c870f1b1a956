package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/emergency-locator/internal/domain"
)

// MockServiceRepository is a mock of ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindNearest(ctx context.Context, lat, lon float64) (*domain.NearestService, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NearestService), args.Error(1)
}

func (m *MockServiceRepository) SearchWithinRadius(ctx context.Context, lat, lon, radiusMeters float64, types []domain.ServiceType) ([]*domain.NearestService, error) {
	args := m.Called(ctx, lat, lon, radiusMeters, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.NearestService), args.Error(1)
}

func (m *MockServiceRepository) GetAll(ctx context.Context) ([]*domain.EmergencyService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EmergencyService), args.Error(1)
}

func (m *MockServiceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, svc *domain.EmergencyService) (*domain.EmergencyService, error) {
	args := m.Called(ctx, svc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmergencyService), args.Error(1)
}

func (m *MockServiceRepository) CreateBatch(ctx context.Context, services []*domain.EmergencyService) (int, error) {
	args := m.Called(ctx, services)
	return args.Int(0), args.Error(1)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewRepository is a mock of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByServiceID(ctx context.Context, serviceID int64) ([]*domain.Review, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

// MockDirectionsRepository is a mock of DirectionsRepository
type MockDirectionsRepository struct {
	mock.Mock
}

func (m *MockDirectionsRepository) GetRoute(ctx context.Context, origin, destination domain.Coordinate) (*domain.Route, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}
