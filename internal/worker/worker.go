package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sbilibin2017/gamepeaks/internal/logger"
	"github.com/sbilibin2017/gamepeaks/internal/models"
)

//go:generate mockgen -source=worker.go -destination=worker_mock.go -package=worker

// SnapshotWriter replaces the persisted snapshot.
type SnapshotWriter interface {
	SaveAll(ctx context.Context, peaks []*models.Peak) error
}

// SnapshotReader reads the persisted snapshot.
type SnapshotReader interface {
	List(ctx context.Context) ([]*models.Peak, error)
}

// CurrentWriter raises a peak in the live in-memory store.
type CurrentWriter interface {
	Save(ctx context.Context, peak *models.Peak) error
}

// CurrentReader lists the live in-memory peaks.
type CurrentReader interface {
	List(ctx context.Context) ([]*models.Peak, error)
}

// PeakWorker keeps the in-memory peak tier durable across restarts by
// restoring it from a snapshot file and writing it back periodically.
type PeakWorker struct {
	restore        bool
	storeInterval  time.Duration
	currentReader  CurrentReader
	currentWriter  CurrentWriter
	snapshotReader SnapshotReader
	snapshotWriter SnapshotWriter
}

// NewPeakWorker creates a new PeakWorker. A zero storeInterval writes the
// snapshot only on shutdown.
func NewPeakWorker(
	restore bool,
	storeInterval time.Duration,
	currentReader CurrentReader,
	currentWriter CurrentWriter,
	snapshotReader SnapshotReader,
	snapshotWriter SnapshotWriter,
) *PeakWorker {
	return &PeakWorker{
		restore:        restore,
		storeInterval:  storeInterval,
		currentReader:  currentReader,
		currentWriter:  currentWriter,
		snapshotReader: snapshotReader,
		snapshotWriter: snapshotWriter,
	}
}

// Start restores the snapshot if enabled, then snapshots on every tick and
// once more when ctx is done. A failed restore or final snapshot is returned;
// failed periodic snapshots are logged and retried on the next tick.
func (pw *PeakWorker) Start(ctx context.Context) error {
	if pw.restore {
		if err := pw.restoreSnapshot(ctx); err != nil {
			return err
		}
	}

	var tick <-chan time.Time
	if pw.storeInterval > 0 {
		ticker := time.NewTicker(pw.storeInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return pw.snapshot(context.WithoutCancel(ctx))
		case <-tick:
			if err := pw.snapshot(ctx); err != nil {
				logger.Log.Error("peak snapshot failed", zap.Error(err))
			}
		}
	}
}

func (pw *PeakWorker) restoreSnapshot(ctx context.Context) error {
	peaks, err := pw.snapshotReader.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range peaks {
		if err := pw.currentWriter.Save(ctx, p); err != nil {
			return err
		}
	}
	logger.Log.Info("peaks restored", zap.Int("count", len(peaks)))
	return nil
}

func (pw *PeakWorker) snapshot(ctx context.Context) error {
	peaks, err := pw.currentReader.List(ctx)
	if err != nil {
		return err
	}
	return pw.snapshotWriter.SaveAll(ctx, peaks)
}
