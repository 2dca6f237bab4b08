package configs

import (
	"strings"
	"time"

	"github.com/sbilibin2017/gamepeaks/internal/models"
)

// Defaults applied when no source provides a value.
const (
	DefaultAddress        = ":8080"
	DefaultGamesHost      = "https://games.roblox.com"
	DefaultGroupsHost     = "https://groups.roblox.com"
	DefaultRetries        = 2
	DefaultTimeout        = 8 * time.Second
	DefaultCacheTTL       = 15 * time.Second
	DefaultGroupCacheTTL  = 30 * time.Second
	DefaultStoreInterval  = 300
	DefaultMigrationsDir  = "migrations"
	DefaultTrackInterval  = 60 * time.Second
	DefaultLogLevel       = "info"
	DefaultShutdownPeriod = 5 * time.Second
)

// ServerConfig holds configuration settings for the proxy server.
type ServerConfig struct {
	Address         string           `json:"address"`           // Listen address
	GamesHost       string           `json:"games_host"`        // Games and votes upstream host
	GroupsHost      string           `json:"groups_host"`       // Groups upstream host
	Retries         int              `json:"retries"`           // Retries after the first upstream attempt
	Timeout         time.Duration    `json:"timeout"`           // Per-attempt upstream timeout
	CacheTTL        time.Duration    `json:"cache_ttl"`         // Response cache TTL for games and votes
	GroupCacheTTL   time.Duration    `json:"group_cache_ttl"`   // Response cache TTL for groups
	CacheDisabled   bool             `json:"cache_disabled"`    // Skip the response cache entirely
	RedisURL        string           `json:"redis_url"`         // Redis peak tier and shared response cache
	DatabaseDSN     string           `json:"database_dsn"`      // SQL peak tier
	MigrationsDir   string           `json:"migrations_dir"`    // goose migrations directory
	FileStoragePath string           `json:"file_storage_path"` // Snapshot file for the memory peak tier
	StoreInterval   int              `json:"store_interval"`    // Seconds between snapshots (0 means only at shutdown)
	Restore         bool             `json:"restore"`           // Whether to restore peaks from the snapshot on startup
	BaselineFile    string           `json:"baseline_file"`     // JSON seed merged over the compiled-in baseline table
	Baseline        map[string]int64 `json:"baseline"`          // Inline baseline overrides
	TrackIDs        []string         `json:"track_ids"`         // Ids polled in background
	TrackInterval   time.Duration    `json:"track_interval"`    // Tracker period
	RateLimit       int              `json:"rate_limit"`        // Requests per minute per client IP, 0 disables
	BreakerFailures int              `json:"breaker_failures"`  // Consecutive failures opening the circuit, 0 disables
	LogLevel        string           `json:"log_level"`         // zap level
}

// ServerConfigOpt defines a function type for applying options to ServerConfig.
type ServerConfigOpt func(*ServerConfig) error

// NewServerConfig creates a ServerConfig prefilled with defaults and applies
// the given options in order.
func NewServerConfig(opts ...ServerConfigOpt) (*ServerConfig, error) {
	cfg := &ServerConfig{
		Address:       DefaultAddress,
		GamesHost:     DefaultGamesHost,
		GroupsHost:    DefaultGroupsHost,
		Retries:       DefaultRetries,
		Timeout:       DefaultTimeout,
		CacheTTL:      DefaultCacheTTL,
		GroupCacheTTL: DefaultGroupCacheTTL,
		MigrationsDir: DefaultMigrationsDir,
		StoreInterval: DefaultStoreInterval,
		Restore:       true,
		TrackInterval: DefaultTrackInterval,
		LogLevel:      DefaultLogLevel,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// firstString returns the first non-blank value.
func firstString(values []string) (string, bool) {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// WithAddress sets Address to the first non-empty string provided.
func WithAddress(addrs ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(addrs); ok {
			cfg.Address = v
		}
		return nil
	}
}

// WithGamesHost sets GamesHost to the first non-empty string provided.
func WithGamesHost(hosts ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(hosts); ok {
			cfg.GamesHost = v
		}
		return nil
	}
}

// WithGroupsHost sets GroupsHost to the first non-empty string provided.
func WithGroupsHost(hosts ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(hosts); ok {
			cfg.GroupsHost = v
		}
		return nil
	}
}

// WithRetries sets Retries to the first non-negative value provided.
// Use -1 to mark a source as unset.
func WithRetries(retries ...int) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, r := range retries {
			if r >= 0 {
				cfg.Retries = r
				break
			}
		}
		return nil
	}
}

// WithTimeout sets Timeout to the first positive duration provided.
func WithTimeout(timeouts ...time.Duration) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, t := range timeouts {
			if t > 0 {
				cfg.Timeout = t
				break
			}
		}
		return nil
	}
}

// WithCacheTTL sets CacheTTL to the first positive duration provided.
func WithCacheTTL(ttls ...time.Duration) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, t := range ttls {
			if t > 0 {
				cfg.CacheTTL = t
				break
			}
		}
		return nil
	}
}

// WithGroupCacheTTL sets GroupCacheTTL to the first positive duration provided.
func WithGroupCacheTTL(ttls ...time.Duration) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, t := range ttls {
			if t > 0 {
				cfg.GroupCacheTTL = t
				break
			}
		}
		return nil
	}
}

// WithCacheDisabled disables the response cache if any value is true.
func WithCacheDisabled(disabled ...bool) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, d := range disabled {
			if d {
				cfg.CacheDisabled = true
				break
			}
		}
		return nil
	}
}

// WithRedisURL sets RedisURL to the first non-empty string provided.
func WithRedisURL(urls ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(urls); ok {
			cfg.RedisURL = v
		}
		return nil
	}
}

// WithDatabaseDSN sets DatabaseDSN to the first non-empty string provided.
func WithDatabaseDSN(dsns ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(dsns); ok {
			cfg.DatabaseDSN = v
		}
		return nil
	}
}

// WithMigrationsDir sets MigrationsDir to the first non-empty string provided.
func WithMigrationsDir(dirs ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(dirs); ok {
			cfg.MigrationsDir = v
		}
		return nil
	}
}

// WithFileStoragePath sets FileStoragePath to the first non-empty string provided.
func WithFileStoragePath(paths ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(paths); ok {
			cfg.FileStoragePath = v
		}
		return nil
	}
}

// WithStoreInterval sets StoreInterval to the first non-negative value provided.
// Use -1 to mark a source as unset.
func WithStoreInterval(intervals ...int) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, i := range intervals {
			if i >= 0 {
				cfg.StoreInterval = i
				break
			}
		}
		return nil
	}
}

// WithRestore sets Restore from the first non-nil value provided.
func WithRestore(restores ...*bool) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, r := range restores {
			if r != nil {
				cfg.Restore = *r
				break
			}
		}
		return nil
	}
}

// WithBaselineFile sets BaselineFile to the first non-empty string provided.
func WithBaselineFile(paths ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(paths); ok {
			cfg.BaselineFile = v
		}
		return nil
	}
}

// WithBaseline merges inline baseline overrides; later maps win.
func WithBaseline(seeds ...map[string]int64) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, seed := range seeds {
			for id, v := range seed {
				if cfg.Baseline == nil {
					cfg.Baseline = make(map[string]int64)
				}
				cfg.Baseline[id] = v
			}
		}
		return nil
	}
}

// WithTrackIDs sets TrackIDs from the first non-empty comma-separated list.
func WithTrackIDs(lists ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, list := range lists {
			if ids := models.ParseIDs(list); len(ids) > 0 {
				cfg.TrackIDs = ids
				break
			}
		}
		return nil
	}
}

// WithTrackInterval sets TrackInterval to the first positive duration provided.
func WithTrackInterval(intervals ...time.Duration) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, i := range intervals {
			if i > 0 {
				cfg.TrackInterval = i
				break
			}
		}
		return nil
	}
}

// WithRateLimit sets RateLimit to the first non-negative value provided.
// Use -1 to mark a source as unset.
func WithRateLimit(limits ...int) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, l := range limits {
			if l >= 0 {
				cfg.RateLimit = l
				break
			}
		}
		return nil
	}
}

// WithBreakerFailures sets BreakerFailures to the first non-negative value provided.
// Use -1 to mark a source as unset.
func WithBreakerFailures(failures ...int) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		for _, f := range failures {
			if f >= 0 {
				cfg.BreakerFailures = f
				break
			}
		}
		return nil
	}
}

// WithLogLevel sets LogLevel to the first non-empty string provided.
func WithLogLevel(levels ...string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(levels); ok {
			cfg.LogLevel = strings.ToLower(v)
		}
		return nil
	}
}
