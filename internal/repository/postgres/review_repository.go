package postgres

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
	"github.com/emergency-locator/internal/pkg/errors"
)

type reviewRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewReviewRepository(db *DB) repository.ReviewRepository {
	return &reviewRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	ctx, cancel := r.db.withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO reviews (service_id, user_name, rating, review)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := *review
	err := r.db.QueryRowContext(ctx, query,
		review.ServiceID, review.UserName, review.Rating, review.Review,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		// FK violation means the referenced facility does not exist.
		if isForeignKeyViolation(err) {
			return nil, errors.ErrServiceNotFound
		}
		r.logger.Error("Failed to create review",
			zap.Int64("service_id", review.ServiceID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

// isForeignKeyViolation covers both drivers in use: pgx in the service and
// lib/pq in the test helpers.
func isForeignKeyViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if stderrors.As(err, &pgxErr) {
		return pgxErr.Code == "23503"
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}

func (r *reviewRepository) GetByServiceID(ctx context.Context, serviceID int64) ([]*domain.Review, error) {
	ctx, cancel := r.db.withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, service_id, user_name, rating, review, created_at
		FROM reviews
		WHERE service_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, serviceID)
	if err != nil {
		r.logger.Error("Failed to get reviews",
			zap.Int64("service_id", serviceID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		var rev domain.Review
		err := rows.Scan(
			&rev.ID, &rev.ServiceID, &rev.UserName, &rev.Rating, &rev.Review, &rev.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan review row", zap.Error(err))
			continue
		}
		reviews = append(reviews, &rev)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reviews, nil
}
