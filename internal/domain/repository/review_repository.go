package repository

import (
	"context"

	"github.com/emergency-locator/internal/domain"
)

// ReviewRepository persists append-only reviews.
type ReviewRepository interface {
	// Create inserts a review and returns it with id and creation time set.
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)

	// GetByServiceID returns all reviews for one facility, newest first.
	GetByServiceID(ctx context.Context, serviceID int64) ([]*domain.Review, error)
}
