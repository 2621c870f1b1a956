package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
	"github.com/emergency-locator/internal/pkg/errors"
	"github.com/emergency-locator/internal/usecase/dto"
)

// ReviewUseCase handles append-only service reviews.
type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	serviceRepo repository.ServiceRepository
	logger      *zap.Logger
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	serviceRepo repository.ServiceRepository,
	logger *zap.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create validates the rating and the facility reference before writing
// anything. A review for an unknown facility is rejected with not found.
func (uc *ReviewUseCase) Create(ctx context.Context, req dto.AddReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.ErrInvalidRating
	}

	exists, err := uc.serviceRepo.Exists(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("Failed to verify service for review",
			zap.Int64("service_id", req.ServiceID),
			zap.Error(err),
		)
		return nil, err
	}
	if !exists {
		return nil, errors.ErrServiceNotFound
	}

	review := &domain.Review{
		ServiceID: req.ServiceID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Review:    req.Review,
	}

	created, err := uc.reviewRepo.Create(ctx, review)
	if err != nil {
		if err != errors.ErrServiceNotFound {
			uc.logger.Error("Failed to create review",
				zap.Int64("service_id", req.ServiceID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	uc.logger.Info("Review created",
		zap.Int64("id", created.ID),
		zap.Int64("service_id", created.ServiceID),
		zap.Int("rating", created.Rating),
	)
	return created, nil
}

// GetByServiceID returns reviews for one facility, newest first. The facility
// must exist; an existing facility with no reviews yields an empty list.
func (uc *ReviewUseCase) GetByServiceID(ctx context.Context, serviceID int64) (*dto.ReviewsResponse, error) {
	exists, err := uc.serviceRepo.Exists(ctx, serviceID)
	if err != nil {
		uc.logger.Error("Failed to verify service for reviews",
			zap.Int64("service_id", serviceID),
			zap.Error(err),
		)
		return nil, err
	}
	if !exists {
		return nil, errors.ErrServiceNotFound
	}

	reviews, err := uc.reviewRepo.GetByServiceID(ctx, serviceID)
	if err != nil {
		uc.logger.Error("Failed to get reviews",
			zap.Int64("service_id", serviceID),
			zap.Error(err),
		)
		return nil, err
	}

	if reviews == nil {
		reviews = []*domain.Review{}
	}

	return &dto.ReviewsResponse{
		Reviews: reviews,
		Total:   len(reviews),
	}, nil
}
