package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
	"github.com/emergency-locator/internal/pkg/errors"
)

type serviceRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewServiceRepository(db *DB) repository.ServiceRepository {
	return &serviceRepository{
		db:     db,
		logger: db.logger,
	}
}

// FindNearest orders by geodesic distance on the geography column and takes
// the first row. Equidistant rows are returned in store order; no tie-break.
func (r *serviceRepository) FindNearest(ctx context.Context, lat, lon float64) (*domain.NearestService, error) {
	ctx, cancel := r.db.withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, type, address, contact_info,
		       ST_X(location::geometry) AS longitude,
		       ST_Y(location::geometry) AS latitude,
		       ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_meters
		FROM emergency_services
		ORDER BY distance_meters ASC
		LIMIT 1
	`

	var svc domain.NearestService
	err := r.db.QueryRowContext(ctx, query, lon, lat).Scan(
		&svc.ID, &svc.Name, &svc.Type, &svc.Address, &svc.ContactInfo,
		&svc.Lon, &svc.Lat, &svc.DistanceMeters,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNoServicesFound
	}
	if err != nil {
		r.logger.Error("Failed to find nearest service",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return &svc, nil
}

// SearchWithinRadius returns matches ordered by ascending distance.
func (r *serviceRepository) SearchWithinRadius(
	ctx context.Context,
	lat, lon, radiusMeters float64,
	types []domain.ServiceType,
) ([]*domain.NearestService, error) {
	ctx, cancel := r.db.withQueryTimeout(ctx)
	defer cancel()

	query := `
		WITH origin AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT s.id, s.name, s.type, s.address, s.contact_info,
		       ST_X(s.location::geometry) AS longitude,
		       ST_Y(s.location::geometry) AS latitude,
		       ST_Distance(s.location, origin.geom) AS distance_meters
		FROM emergency_services s, origin
		WHERE ST_DWithin(s.location, origin.geom, $3)
	`

	args := []interface{}{lon, lat, radiusMeters}
	if len(types) > 0 {
		typeStrs := make([]string, 0, len(types))
		for _, t := range types {
			typeStrs = append(typeStrs, string(t))
		}
		query += " AND s.type = ANY($4)"
		args = append(args, pq.Array(typeStrs))
	}
	query += " ORDER BY distance_meters ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to search services within radius",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Float64("radius_meters", radiusMeters),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var services []*domain.NearestService
	for rows.Next() {
		var svc domain.NearestService
		err := rows.Scan(
			&svc.ID, &svc.Name, &svc.Type, &svc.Address, &svc.ContactInfo,
			&svc.Lon, &svc.Lat, &svc.DistanceMeters,
		)
		if err != nil {
			r.logger.Error("Failed to scan service row", zap.Error(err))
			continue
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return services, nil
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]*domain.EmergencyService, error) {
	ctx, cancel := r.db.withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, type, address, contact_info,
		       ST_X(location::geometry) AS longitude,
		       ST_Y(location::geometry) AS latitude
		FROM emergency_services
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to get services", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var services []*domain.EmergencyService
	for rows.Next() {
		var svc domain.EmergencyService
		err := rows.Scan(
			&svc.ID, &svc.Name, &svc.Type, &svc.Address, &svc.ContactInfo,
			&svc.Lon, &svc.Lat,
		)
		if err != nil {
			r.logger.Error("Failed to scan service row", zap.Error(err))
			continue
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return services, nil
}

func (r *serviceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.db.withQueryTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM emergency_services WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		r.logger.Error("Failed to check service existence", zap.Int64("id", id), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.EmergencyService) (*domain.EmergencyService, error) {
	ctx, cancel := r.db.withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO emergency_services (name, type, location, address, contact_info)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6)
		RETURNING id
	`

	created := *svc
	err := r.db.QueryRowContext(ctx, query,
		svc.Name, svc.Type, svc.Lon, svc.Lat, svc.Address, svc.ContactInfo,
	).Scan(&created.ID)
	if err != nil {
		r.logger.Error("Failed to create service",
			zap.String("name", svc.Name),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

// CreateBatch loads normalized facility rows inside a single transaction.
func (r *serviceRepository) CreateBatch(ctx context.Context, services []*domain.EmergencyService) (int, error) {
	if len(services) == 0 {
		return 0, nil
	}

	// One deadline per batch row; a whole batch is allowed to take longer
	// than a single interactive query.
	ctx, cancel := context.WithTimeout(ctx, time.Duration(len(services))*r.db.queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin batch transaction", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO emergency_services (name, type, location, address, contact_info)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6)
	`)
	if err != nil {
		r.logger.Error("Failed to prepare batch insert", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	defer stmt.Close()

	inserted := 0
	for _, svc := range services {
		if _, err := stmt.ExecContext(ctx,
			svc.Name, svc.Type, svc.Lon, svc.Lat, svc.Address, svc.ContactInfo,
		); err != nil {
			r.logger.Error("Failed to insert service row",
				zap.String("name", svc.Name),
				zap.Error(err),
			)
			return 0, errors.ErrDatabaseError
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit batch insert", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return inserted, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.db.withQueryTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM emergency_services WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete service", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrServiceNotFound
	}

	return nil
}
