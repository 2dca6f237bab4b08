package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sbilibin2017/gamepeaks/internal/logger"
	"github.com/sbilibin2017/gamepeaks/internal/metrics"
	"github.com/sbilibin2017/gamepeaks/internal/models"
)

//go:generate mockgen -source=peak.go -destination=peak_mock.go -package=services

// PeakWriter defines the interface for saving peaks.
type PeakWriter interface {
	// Save raises the stored peak for peak.Key to at least peak.Value.
	Save(ctx context.Context, peak *models.Peak) error
}

// PeakReader defines the interface for retrieving peaks.
type PeakReader interface {
	// Get returns the stored peak, or nil when nothing was stored yet.
	Get(ctx context.Context, key string) (*models.Peak, error)
}

// Baseline provides the seeded historical high for an entity.
type Baseline interface {
	Get(id string) int64
}

// PeakService maintains the non-decreasing peak concurrent-player value per
// game.
type PeakService struct {
	writer   PeakWriter
	reader   PeakReader
	baseline Baseline
}

// NewPeakService creates a new PeakService.
func NewPeakService(
	writer PeakWriter,
	reader PeakReader,
	baseline Baseline,
) *PeakService {
	return &PeakService{
		writer:   writer,
		reader:   reader,
		baseline: baseline,
	}
}

// Get returns max(baseline, stored) for id.
func (svc *PeakService) Get(ctx context.Context, id string) (int64, error) {
	stored, err := svc.stored(ctx, id)
	if err != nil {
		return 0, err
	}
	return max(svc.baseline.Get(id), stored), nil
}

// Update folds an observation into the peak and returns the new peak:
// max(baseline, stored, observed). Missing values count as zero. The store is
// written only when the result exceeds the stored value.
func (svc *PeakService) Update(
	ctx context.Context,
	id string,
	observed models.NullInt,
) (int64, error) {
	stored, err := svc.stored(ctx, id)
	if err != nil {
		return 0, err
	}

	next := max(svc.baseline.Get(id), stored, observed.ValueOrZero())
	if next <= stored {
		return next, nil
	}

	if err := svc.writer.Save(ctx, &models.Peak{Key: models.PeakKey(id), Value: next}); err != nil {
		return 0, fmt.Errorf("save peak %s: %w", id, err)
	}
	metrics.PeakWrites.Inc()
	logger.Log.Debug("peak raised",
		zap.String("id", id),
		zap.Int64("from", stored),
		zap.Int64("to", next),
	)

	return next, nil
}

func (svc *PeakService) stored(ctx context.Context, id string) (int64, error) {
	peak, err := svc.reader.Get(ctx, models.PeakKey(id))
	if err != nil {
		return 0, fmt.Errorf("read peak %s: %w", id, err)
	}
	if peak == nil {
		return 0, nil
	}
	return peak.Value, nil
}
