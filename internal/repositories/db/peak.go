package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gamepeaks/internal/logger"
	"github.com/sbilibin2017/gamepeaks/internal/models"
)

// PeakWriteRepository provides write access to peaks in a SQL database.
type PeakWriteRepository struct {
	db *sqlx.DB
}

// NewPeakWriteRepository creates a new PeakWriteRepository with the given database connection.
func NewPeakWriteRepository(db *sqlx.DB) *PeakWriteRepository {
	return &PeakWriteRepository{db: db}
}

// Save inserts a peak or raises the stored one. The conditional upsert keeps
// the column from ever decreasing.
func (r *PeakWriteRepository) Save(
	ctx context.Context,
	peak *models.Peak,
) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO peaks (peak_key, peak_value)
		VALUES (:peak_key, :peak_value)
		ON CONFLICT (peak_key) DO UPDATE
		SET peak_value = EXCLUDED.peak_value
		WHERE peaks.peak_value < EXCLUDED.peak_value
	`, peak)
	if err != nil {
		logger.Log.Error("failed to save peak", zap.String("key", peak.Key), zap.Error(err))
		return err
	}

	logger.Log.Debug("peak saved", zap.String("key", peak.Key), zap.Int64("value", peak.Value))
	return nil
}

// PeakReadRepository provides read access to peaks stored in a SQL database.
type PeakReadRepository struct {
	db *sqlx.DB
}

// NewPeakReadRepository creates a new PeakReadRepository with the given database connection.
func NewPeakReadRepository(db *sqlx.DB) *PeakReadRepository {
	return &PeakReadRepository{db: db}
}

// Get retrieves a peak by key. It returns nil when the key is unknown.
func (r *PeakReadRepository) Get(ctx context.Context, key string) (*models.Peak, error) {
	var peak models.Peak
	query := r.db.Rebind(`
		SELECT peak_key, peak_value
		FROM peaks
		WHERE peak_key = ?
	`)

	err := r.db.GetContext(ctx, &peak, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("failed to fetch peak", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	return &peak, nil
}

// Ping checks the database connection.
func (r *PeakReadRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
