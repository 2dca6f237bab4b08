package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/sbilibin2017/gamepeaks/internal/configs"
)

// flagValues holds the raw command-line values.
type flagValues struct {
	address         string
	gamesHost       string
	groupsHost      string
	retries         int
	timeout         time.Duration
	cacheTTL        int
	groupCacheTTL   int
	noCache         bool
	redisURL        string
	databaseDSN     string
	migrationsDir   string
	fileStoragePath string
	storeInterval   int
	restore         bool
	baselineFile    string
	trackIDs        string
	trackInterval   time.Duration
	rateLimit       int
	breakerFailures int
	logLevel        string
	configFilePath  string
}

// fileConfig mirrors the JSON config file. Pointers tell unset keys apart
// from zero values.
type fileConfig struct {
	Address         *string          `json:"address,omitempty"`
	GamesHost       *string          `json:"games_host,omitempty"`
	GroupsHost      *string          `json:"groups_host,omitempty"`
	Retries         *int             `json:"retries,omitempty"`
	Timeout         *string          `json:"timeout,omitempty"`
	CacheTTL        *int             `json:"cache_ttl,omitempty"`
	GroupCacheTTL   *int             `json:"group_cache_ttl,omitempty"`
	NoCache         *bool            `json:"no_cache,omitempty"`
	RedisURL        *string          `json:"redis_url,omitempty"`
	DatabaseDSN     *string          `json:"database_dsn,omitempty"`
	MigrationsDir   *string          `json:"migrations_dir,omitempty"`
	StoreFile       *string          `json:"store_file,omitempty"`
	StoreInterval   *int             `json:"store_interval,omitempty"`
	Restore         *bool            `json:"restore,omitempty"`
	BaselineFile    *string          `json:"baseline_file,omitempty"`
	Baseline        map[string]int64 `json:"baseline,omitempty"`
	TrackIDs        *string          `json:"track_ids,omitempty"`
	TrackInterval   *string          `json:"track_interval,omitempty"`
	RateLimit       *int             `json:"rate_limit,omitempty"`
	BreakerFailures *int             `json:"breaker_failures,omitempty"`
	LogLevel        *string          `json:"log_level,omitempty"`
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)

	fs.StringVarP(&v.address, "address", "a", configs.DefaultAddress, "listen address")
	fs.StringVar(&v.gamesHost, "games-host", configs.DefaultGamesHost, "games and votes upstream host")
	fs.StringVar(&v.groupsHost, "groups-host", configs.DefaultGroupsHost, "groups upstream host")
	fs.IntVar(&v.retries, "retries", configs.DefaultRetries, "upstream retries after the first attempt")
	fs.DurationVar(&v.timeout, "timeout", configs.DefaultTimeout, "per-attempt upstream timeout")
	fs.IntVar(&v.cacheTTL, "cache-ttl", int(configs.DefaultCacheTTL/time.Second), "response cache TTL for games and votes, seconds")
	fs.IntVar(&v.groupCacheTTL, "group-cache-ttl", int(configs.DefaultGroupCacheTTL/time.Second), "response cache TTL for groups, seconds")
	fs.BoolVar(&v.noCache, "no-cache", false, "disable the response cache")
	fs.StringVarP(&v.redisURL, "redis-url", "r", "", "redis URL for peaks and the shared response cache")
	fs.StringVarP(&v.databaseDSN, "database-dsn", "d", "", "postgres DSN or sqlite path for peaks")
	fs.StringVar(&v.migrationsDir, "migrations-dir", configs.DefaultMigrationsDir, "goose migrations directory")
	fs.StringVarP(&v.fileStoragePath, "file", "f", "", "snapshot file for in-memory peaks")
	fs.IntVarP(&v.storeInterval, "store-interval", "i", configs.DefaultStoreInterval, "seconds between snapshots (0 = only at shutdown)")
	fs.BoolVar(&v.restore, "restore", true, "restore peaks from the snapshot on startup")
	fs.StringVarP(&v.baselineFile, "baseline", "b", "", "JSON file with baseline peaks by id")
	fs.StringVar(&v.trackIDs, "track-ids", "", "comma-separated ids polled in background")
	fs.DurationVar(&v.trackInterval, "track-interval", configs.DefaultTrackInterval, "background polling period")
	fs.IntVar(&v.rateLimit, "rate-limit", 0, "requests per minute per client IP (0 = unlimited)")
	fs.IntVar(&v.breakerFailures, "breaker-failures", 0, "consecutive upstream failures opening the circuit (0 = disabled)")
	fs.StringVarP(&v.logLevel, "log-level", "l", configs.DefaultLogLevel, "log level")
	fs.StringVarP(&v.configFilePath, "config", "c", "", "path to JSON config file")

	return fs
}

// parseFlags builds the server configuration. Environment variables win over
// explicit flags, explicit flags win over the config file, and the config
// file wins over defaults. A .env file in the working directory is loaded
// first if present.
func parseFlags(args []string) (*configs.ServerConfig, error) {
	var v flagValues
	fs := newFlagSet(&v)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if len(fs.Args()) > 0 {
		return nil, errors.New("unknown flags or arguments are provided")
	}

	_ = godotenv.Load()

	configFilePath := firstNonEmpty(os.Getenv("CONFIG"), v.configFilePath)
	var file fileConfig
	if configFilePath != "" {
		cfgBytes, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := json.Unmarshal(cfgBytes, &file); err != nil {
			return nil, fmt.Errorf("error parsing config JSON: %w", err)
		}
	}

	env := envReader{}
	changed := fs.Changed

	opts := []configs.ServerConfigOpt{
		configs.WithAddress(os.Getenv("ADDRESS"), pick(changed("address"), v.address), deref(file.Address)),
		configs.WithGamesHost(os.Getenv("GAMES_HOST"), pick(changed("games-host"), v.gamesHost), deref(file.GamesHost)),
		configs.WithGroupsHost(os.Getenv("GROUPS_HOST"), pick(changed("groups-host"), v.groupsHost), deref(file.GroupsHost)),
		configs.WithRetries(env.intValue("UPSTREAM_RETRIES"), pickInt(changed("retries"), v.retries), derefInt(file.Retries)),
		configs.WithTimeout(env.durationValue("UPSTREAM_TIMEOUT"), pickDuration(changed("timeout"), v.timeout), env.parseDuration("timeout", file.Timeout)),
		configs.WithCacheTTL(env.secondsValue("CACHE_TTL"), pickSeconds(changed("cache-ttl"), v.cacheTTL), seconds(derefInt(file.CacheTTL))),
		configs.WithGroupCacheTTL(env.secondsValue("GROUP_CACHE_TTL"), pickSeconds(changed("group-cache-ttl"), v.groupCacheTTL), seconds(derefInt(file.GroupCacheTTL))),
		configs.WithCacheDisabled(env.boolValue("NO_CACHE"), v.noCache, file.NoCache != nil && *file.NoCache),
		configs.WithRedisURL(os.Getenv("REDIS_URL"), v.redisURL, deref(file.RedisURL)),
		configs.WithDatabaseDSN(os.Getenv("DATABASE_DSN"), v.databaseDSN, deref(file.DatabaseDSN)),
		configs.WithMigrationsDir(os.Getenv("MIGRATIONS_DIR"), pick(changed("migrations-dir"), v.migrationsDir), deref(file.MigrationsDir)),
		configs.WithFileStoragePath(os.Getenv("FILE_STORAGE_PATH"), v.fileStoragePath, deref(file.StoreFile)),
		configs.WithStoreInterval(env.intValue("STORE_INTERVAL"), pickInt(changed("store-interval"), v.storeInterval), derefInt(file.StoreInterval)),
		configs.WithRestore(env.boolPtr("RESTORE"), pickBool(changed("restore"), v.restore), file.Restore),
		configs.WithBaselineFile(os.Getenv("BASELINE_FILE"), v.baselineFile, deref(file.BaselineFile)),
		configs.WithBaseline(file.Baseline),
		configs.WithTrackIDs(os.Getenv("TRACK_IDS"), v.trackIDs, deref(file.TrackIDs)),
		configs.WithTrackInterval(env.durationValue("TRACK_INTERVAL"), pickDuration(changed("track-interval"), v.trackInterval), env.parseDuration("track_interval", file.TrackInterval)),
		configs.WithRateLimit(env.intValue("RATE_LIMIT"), pickInt(changed("rate-limit"), v.rateLimit), derefInt(file.RateLimit)),
		configs.WithBreakerFailures(env.intValue("BREAKER_FAILURES"), pickInt(changed("breaker-failures"), v.breakerFailures), derefInt(file.BreakerFailures)),
		configs.WithLogLevel(os.Getenv("LOG_LEVEL"), pick(changed("log-level"), v.logLevel), deref(file.LogLevel)),
	}

	if env.err != nil {
		return nil, env.err
	}

	return configs.NewServerConfig(opts...)
}

// envReader parses typed environment variables and keeps the first error.
// Unset variables yield the value the matching option treats as unset.
type envReader struct {
	err error
}

func (e *envReader) fail(name, value string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
}

func (e *envReader) intValue(name string) int {
	raw := os.Getenv(name)
	if raw == "" {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		e.fail(name, raw, err)
		return -1
	}
	if n < 0 {
		e.fail(name, raw, errors.New("must not be negative"))
		return -1
	}
	return n
}

func (e *envReader) secondsValue(name string) time.Duration {
	n := e.intValue(name)
	if n < 0 {
		return 0
	}
	return seconds(n)
}

func (e *envReader) durationValue(name string) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	return e.parseDuration(name, &raw)
}

func (e *envReader) parseDuration(name string, raw *string) time.Duration {
	if raw == nil || *raw == "" {
		return 0
	}
	d, err := time.ParseDuration(strings.TrimSpace(*raw))
	if err != nil {
		e.fail(name, *raw, err)
		return 0
	}
	return d
}

func (e *envReader) boolPtr(name string) *bool {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		e.fail(name, raw, err)
		return nil
	}
	return &b
}

func (e *envReader) boolValue(name string) bool {
	b := e.boolPtr(name)
	return b != nil && *b
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func pick(changed bool, v string) string {
	if changed {
		return v
	}
	return ""
}

func pickInt(changed bool, v int) int {
	if changed {
		return v
	}
	return -1
}

func pickSeconds(changed bool, v int) time.Duration {
	if changed {
		return seconds(v)
	}
	return 0
}

func pickDuration(changed bool, v time.Duration) time.Duration {
	if changed {
		return v
	}
	return 0
}

func pickBool(changed bool, v bool) *bool {
	if changed {
		return &v
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return -1
	}
	return *n
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
