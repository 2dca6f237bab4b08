// Package tracker observes a fixed set of games on an interval so peaks keep
// moving while no browser is polling.
package tracker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sbilibin2017/gamepeaks/internal/logger"
	"github.com/sbilibin2017/gamepeaks/internal/models"
)

//go:generate mockgen -source=tracker.go -destination=tracker_mock.go -package=tracker

// StatsGetter fetches game stats, updating peaks as a side effect.
type StatsGetter interface {
	GetGameStats(ctx context.Context, ids []string) ([]models.GameMetric, error)
}

// Tracker polls StatsGetter for a fixed id set.
type Tracker struct {
	stats    StatsGetter
	ids      []string
	interval time.Duration
}

// NewTracker creates a Tracker. With no ids or a non-positive interval Start
// returns immediately.
func NewTracker(stats StatsGetter, ids []string, interval time.Duration) *Tracker {
	return &Tracker{
		stats:    stats,
		ids:      append([]string(nil), ids...),
		interval: interval,
	}
}

// Start observes the ids once right away and then on every tick until ctx is
// done. Failed observations are logged; the next tick tries again.
func (t *Tracker) Start(ctx context.Context) error {
	if len(t.ids) == 0 || t.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.observe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t.observe(ctx)
		}
	}
}

func (t *Tracker) observe(ctx context.Context) {
	games, err := t.stats.GetGameStats(ctx, t.ids)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Log.Error("tracked games observation failed",
			zap.Strings("ids", t.ids),
			zap.Error(err),
		)
		return
	}

	for _, g := range games {
		logger.Log.Debug("tracked game observed",
			zap.Int64("id", g.ID),
			zap.Int64("playing", g.Playing.ValueOrZero()),
			zap.Int64("peak", g.PeakPlaying),
		)
	}
}
