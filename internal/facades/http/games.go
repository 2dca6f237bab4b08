package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/sbilibin2017/gamepeaks/internal/models"
)

//go:generate mockgen -source=games.go -destination=games_mock.go -package=http

// Fetcher performs a cached GET and returns the response body.
type Fetcher interface {
	Fetch(ctx context.Context, resource, rawURL string, ttl time.Duration) ([]byte, error)
}

// Resource names used in metrics and logs.
const (
	ResourceGames = "games"
	ResourceVotes = "votes"
	ResourceGroup = "group"
)

// GamesFacadeConfig holds the upstream hosts and cache lifetimes.
type GamesFacadeConfig struct {
	GamesHost  string
	GroupsHost string
	GamesTTL   time.Duration
	GroupTTL   time.Duration
}

// GamesFacade builds upstream URLs and decodes the game, vote and group
// documents.
type GamesFacade struct {
	fetcher Fetcher
	cfg     GamesFacadeConfig
}

// NewGamesFacade creates a facade on top of fetcher.
func NewGamesFacade(fetcher Fetcher, cfg GamesFacadeConfig) *GamesFacade {
	cfg.GamesHost = strings.TrimRight(cfg.GamesHost, "/")
	cfg.GroupsHost = strings.TrimRight(cfg.GroupsHost, "/")
	return &GamesFacade{fetcher: fetcher, cfg: cfg}
}

type gamesResponse struct {
	Data []models.GameInfo `json:"data"`
}

type votesResponse struct {
	Data []models.GameVotes `json:"data"`
}

// FetchGames returns the game records for one batch of ids.
func (f *GamesFacade) FetchGames(ctx context.Context, ids []string) ([]models.GameInfo, error) {
	body, err := f.fetcher.Fetch(ctx, ResourceGames, f.batchURL("/v1/games", ids), f.cfg.GamesTTL)
	if err != nil {
		return nil, err
	}

	var resp gamesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode games response: %w", err)
	}
	if resp.Data == nil {
		return []models.GameInfo{}, nil
	}
	return resp.Data, nil
}

// FetchVotes returns the vote records for one batch of ids.
func (f *GamesFacade) FetchVotes(ctx context.Context, ids []string) ([]models.GameVotes, error) {
	body, err := f.fetcher.Fetch(ctx, ResourceVotes, f.batchURL("/v1/games/votes", ids), f.cfg.GamesTTL)
	if err != nil {
		return nil, err
	}

	var resp votesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode votes response: %w", err)
	}
	if resp.Data == nil {
		return []models.GameVotes{}, nil
	}
	return resp.Data, nil
}

// FetchGroup returns the group document for groupID.
func (f *GamesFacade) FetchGroup(ctx context.Context, groupID string) (*models.Group, error) {
	rawURL := f.cfg.GroupsHost + "/v1/groups/" + url.PathEscape(groupID)
	body, err := f.fetcher.Fetch(ctx, ResourceGroup, rawURL, f.cfg.GroupTTL)
	if err != nil {
		return nil, err
	}

	var group models.Group
	if err := json.Unmarshal(body, &group); err != nil {
		return nil, fmt.Errorf("decode group response: %w", err)
	}
	return &group, nil
}

func (f *GamesFacade) batchURL(path string, ids []string) string {
	return f.cfg.GamesHost + path + "?universeIds=" + url.QueryEscape(strings.Join(ids, ","))
}
