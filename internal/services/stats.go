package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gamepeaks/internal/models"
)

//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=services

// ErrInvalidRequest is returned for requests missing required input.
var ErrInvalidRequest = errors.New("invalid request")

// BatchSize is the maximum number of ids the upstream accepts per request.
const BatchSize = 100

// GameFetcher loads game and vote records for one batch of ids.
type GameFetcher interface {
	FetchGames(ctx context.Context, ids []string) ([]models.GameInfo, error)
	FetchVotes(ctx context.Context, ids []string) ([]models.GameVotes, error)
}

// GroupFetcher loads a group document.
type GroupFetcher interface {
	FetchGroup(ctx context.Context, groupID string) (*models.Group, error)
}

// PeakUpdater folds an observation into the stored peak.
type PeakUpdater interface {
	Update(ctx context.Context, id string, observed models.NullInt) (int64, error)
}

// StatsService merges game and vote records into GameMetric values and keeps
// peaks up to date as a side effect.
type StatsService struct {
	games  GameFetcher
	groups GroupFetcher
	peaks  PeakUpdater
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	games GameFetcher,
	groups GroupFetcher,
	peaks PeakUpdater,
) *StatsService {
	return &StatsService{
		games:  games,
		groups: groups,
		peaks:  peaks,
	}
}

// GetGameStats returns one record per game the upstream knows, in batch
// order. Batches run one after another; the game and vote calls of a batch
// run concurrently and a failure of either fails the whole call.
func (svc *StatsService) GetGameStats(
	ctx context.Context,
	ids []string,
) ([]models.GameMetric, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidRequest
	}

	result := make([]models.GameMetric, 0, len(ids))
	for start := 0; start < len(ids); start += BatchSize {
		end := min(start+BatchSize, len(ids))

		batch, err := svc.getBatch(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		result = append(result, batch...)
	}

	return result, nil
}

func (svc *StatsService) getBatch(
	ctx context.Context,
	ids []string,
) ([]models.GameMetric, error) {
	var (
		games []models.GameInfo
		votes []models.GameVotes
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		games, err = svc.games.FetchGames(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		votes, err = svc.games.FetchVotes(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Join(games, votes, func(id int64, playing models.NullInt) (int64, error) {
		return svc.peaks.Update(ctx, strconv.FormatInt(id, 10), playing)
	})
}

// GetGroupMembers returns the member count of a group, null when the upstream
// does not report one.
func (svc *StatsService) GetGroupMembers(
	ctx context.Context,
	groupID string,
) (models.NullInt, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return models.NullInt{}, ErrInvalidRequest
	}

	group, err := svc.groups.FetchGroup(ctx, groupID)
	if err != nil {
		return models.NullInt{}, err
	}
	if group == nil {
		return models.NullInt{}, nil
	}
	return group.MemberCount, nil
}

// PeakFunc returns the peak of a game after observing its player count.
type PeakFunc func(id int64, playing models.NullInt) (int64, error)

// Join builds one GameMetric per game record. Votes are matched by id and
// default to null when absent. peak is called once per game, in order.
func Join(
	games []models.GameInfo,
	votes []models.GameVotes,
	peak PeakFunc,
) ([]models.GameMetric, error) {
	byID := make(map[int64]models.GameVotes, len(votes))
	for _, v := range votes {
		byID[v.ID] = v
	}

	result := make([]models.GameMetric, 0, len(games))
	for _, g := range games {
		peakPlaying, err := peak(g.ID, g.Playing)
		if err != nil {
			return nil, err
		}

		v := byID[g.ID]
		result = append(result, models.GameMetric{
			ID:             g.ID,
			Name:           g.Name,
			Playing:        g.Playing,
			Visits:         g.Visits,
			FavoritedCount: g.FavoritedCount,
			PeakPlaying:    peakPlaying,
			UpVotes:        v.UpVotes,
			DownVotes:      v.DownVotes,
		})
	}

	return result, nil
}
