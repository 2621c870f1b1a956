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

// ServiceUseCase is the facility locator plus facility CRUD.
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
	logger      *zap.Logger
}

func NewServiceUseCase(
	serviceRepo repository.ServiceRepository,
	logger *zap.Logger,
) *ServiceUseCase {
	return &ServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// FindNearest resolves the single closest facility to the given point.
// A store failure during the lookup degrades to "no services found"; the
// caller cannot distinguish it from an empty store.
func (uc *ServiceUseCase) FindNearest(ctx context.Context, lat, lon float64) (*domain.NearestService, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	nearest, err := uc.serviceRepo.FindNearest(ctx, lat, lon)
	if err != nil {
		if err != errors.ErrNoServicesFound {
			uc.logger.Error("Nearest service lookup failed, treating as empty result",
				zap.Float64("lat", lat),
				zap.Float64("lon", lon),
				zap.Error(err),
			)
		}
		return nil, errors.ErrNoServicesFound
	}

	return nearest, nil
}

// SearchWithinRadius returns facilities matching the requested types inside
// the radius, ordered by ascending distance. An empty list is a valid result.
func (uc *ServiceUseCase) SearchWithinRadius(
	ctx context.Context,
	req dto.RadiusSearchRequest,
) (*dto.RadiusSearchResponse, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadiusMeters(req.RadiusMeters) {
		return nil, errors.ErrInvalidRadius
	}

	types := make([]domain.ServiceType, 0, len(req.Types))
	for _, t := range req.Types {
		st := domain.ServiceType(t)
		if !st.IsValid() {
			return nil, errors.ErrInvalidServiceType
		}
		types = append(types, st)
	}

	services, err := uc.serviceRepo.SearchWithinRadius(
		ctx,
		req.Latitude,
		req.Longitude,
		req.RadiusMeters,
		types,
	)
	if err != nil {
		uc.logger.Error("Radius search failed", zap.Error(err))
		return nil, err
	}

	if services == nil {
		services = []*domain.NearestService{}
	}

	return &dto.RadiusSearchResponse{
		Services: services,
		Total:    len(services),
	}, nil
}

func (uc *ServiceUseCase) GetAll(ctx context.Context) ([]*domain.EmergencyService, error) {
	services, err := uc.serviceRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list services", zap.Error(err))
		return nil, err
	}
	if len(services) == 0 {
		return nil, errors.ErrNoServicesFound
	}
	return services, nil
}

func (uc *ServiceUseCase) Create(ctx context.Context, req dto.AddServiceRequest) (*domain.EmergencyService, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	serviceType := domain.ServiceType(req.Type)
	if !serviceType.IsValid() {
		return nil, errors.ErrInvalidServiceType
	}

	svc := &domain.EmergencyService{
		Name:        req.Name,
		Type:        serviceType,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
		Lon:         req.Longitude,
		Lat:         req.Latitude,
	}

	created, err := uc.serviceRepo.Create(ctx, svc)
	if err != nil {
		uc.logger.Error("Failed to create service", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Service created",
		zap.Int64("id", created.ID),
		zap.String("type", string(created.Type)),
	)
	return created, nil
}

func (uc *ServiceUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.serviceRepo.Delete(ctx, id); err != nil {
		if err != errors.ErrServiceNotFound {
			uc.logger.Error("Failed to delete service", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	uc.logger.Info("Service deleted", zap.Int64("id", id))
	return nil
}
