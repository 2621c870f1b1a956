package repository

import (
	"context"

	"github.com/emergency-locator/internal/domain"
)

// ServiceRepository is the geospatial store boundary for facilities. Every
// call is a fresh read-through query; the store exclusively owns the data.
type ServiceRepository interface {
	// FindNearest returns the single closest facility to (lat, lon) by
	// geodesic distance, with the distance in meters. Ties between
	// equidistant rows are not broken; the store's first row wins.
	FindNearest(ctx context.Context, lat, lon float64) (*domain.NearestService, error)

	// SearchWithinRadius returns facilities matching any of the given types
	// within radiusMeters of (lat, lon), ordered by ascending distance. An
	// empty result is not an error.
	SearchWithinRadius(ctx context.Context, lat, lon, radiusMeters float64, types []domain.ServiceType) ([]*domain.NearestService, error)

	// GetAll returns every facility in the store.
	GetAll(ctx context.Context) ([]*domain.EmergencyService, error)

	// Exists reports whether a facility with the given id is present.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a facility and returns it with the assigned id.
	Create(ctx context.Context, svc *domain.EmergencyService) (*domain.EmergencyService, error)

	// CreateBatch inserts many facilities in one transaction, for ingestion.
	CreateBatch(ctx context.Context, services []*domain.EmergencyService) (int, error)

	// Delete hard-deletes a facility by id.
	Delete(ctx context.Context, id int64) error
}
