package etl

import (
	"context"

	"go.uber.org/zap"

	"github.com/emergency-locator/internal/domain"
	"github.com/emergency-locator/internal/domain/repository"
	"github.com/emergency-locator/internal/pkg/metrics"
)

// Pipeline is the one-shot ingestion run: extract amenities from Overpass,
// normalize them to facility rows, load them in batches.
type Pipeline struct {
	client      *OverpassClient
	serviceRepo repository.ServiceRepository
	batchSize   int
	logger      *zap.Logger
}

// Stats summarizes one pipeline run.
type Stats struct {
	Fetched int
	Loaded  int
	Skipped int
}

func NewPipeline(
	client *OverpassClient,
	serviceRepo repository.ServiceRepository,
	batchSize int,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		client:      client,
		serviceRepo: serviceRepo,
		batchSize:   batchSize,
		logger:      logger,
	}
}

// Run ingests every amenity in the bounding box. Individual bad records are
// skipped and counted; a fetch or load failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, bbox domain.BoundingBox) (*Stats, error) {
	elements, err := p.client.Fetch(ctx, bbox)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Fetched: len(elements)}
	metrics.ETLRecordsFetched.Add(float64(len(elements)))

	batch := make([]*domain.EmergencyService, 0, p.batchSize)
	for _, el := range elements {
		result := Transform(el)
		if result.SkipReason != "" {
			stats.Skipped++
			metrics.ETLRecordsSkipped.WithLabelValues(result.SkipReason).Inc()
			p.logger.Debug("Skipping source record",
				zap.String("reason", result.SkipReason),
				zap.String("type", el.Type),
				zap.Int64("osm_id", el.ID),
			)
			continue
		}

		batch = append(batch, result.Service)
		if len(batch) >= p.batchSize {
			if err := p.flush(ctx, batch, stats); err != nil {
				return stats, err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := p.flush(ctx, batch, stats); err != nil {
			return stats, err
		}
	}

	p.logger.Info("Ingestion complete",
		zap.Int("fetched", stats.Fetched),
		zap.Int("loaded", stats.Loaded),
		zap.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

func (p *Pipeline) flush(ctx context.Context, batch []*domain.EmergencyService, stats *Stats) error {
	loaded, err := p.serviceRepo.CreateBatch(ctx, batch)
	if err != nil {
		p.logger.Error("Batch load failed", zap.Int("batch_size", len(batch)), zap.Error(err))
		return err
	}

	stats.Loaded += loaded
	metrics.ETLRecordsLoaded.Add(float64(loaded))
	p.logger.Info("Batch loaded", zap.Int("count", loaded))
	return nil
}
