package apps

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pressly/goose"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gamepeaks/internal/baseline"
	"github.com/sbilibin2017/gamepeaks/internal/cache"
	"github.com/sbilibin2017/gamepeaks/internal/configs"
	"github.com/sbilibin2017/gamepeaks/internal/configs/address"
	"github.com/sbilibin2017/gamepeaks/internal/configs/db"
	redisConfig "github.com/sbilibin2017/gamepeaks/internal/configs/redis"
	httpClient "github.com/sbilibin2017/gamepeaks/internal/configs/transport/http"
	httpFacades "github.com/sbilibin2017/gamepeaks/internal/facades/http"
	httpHandlers "github.com/sbilibin2017/gamepeaks/internal/handlers/http"
	"github.com/sbilibin2017/gamepeaks/internal/logger"
	httpMiddlewares "github.com/sbilibin2017/gamepeaks/internal/middlewares/http"
	dbRepo "github.com/sbilibin2017/gamepeaks/internal/repositories/db"
	"github.com/sbilibin2017/gamepeaks/internal/repositories/file"
	"github.com/sbilibin2017/gamepeaks/internal/repositories/memory"
	redisRepo "github.com/sbilibin2017/gamepeaks/internal/repositories/redis"
	"github.com/sbilibin2017/gamepeaks/internal/runner"
	"github.com/sbilibin2017/gamepeaks/internal/services"
	"github.com/sbilibin2017/gamepeaks/internal/tracker"
	"github.com/sbilibin2017/gamepeaks/internal/worker"
)

// Upstream client tuning that is not exposed as configuration.
const (
	RetryWait         = 250 * time.Millisecond
	RetryStep         = 350 * time.Millisecond
	RetryMaxWait      = 30 * time.Second
	BreakerName       = "upstream"
	BreakerOpenFor    = 30 * time.Second
	ReadHeaderTimeout = 10 * time.Second
)

// peakTier is the selected peak persistence with whatever it needs to run
// and to be released.
type peakTier struct {
	writer services.PeakWriter
	reader services.PeakReader
	pinger httpHandlers.Pinger
	worker runner.Worker
	close  func() error
}

// RunServer builds every component from cfg and serves until ctx is
// cancelled or the process receives a termination signal.
func RunServer(ctx context.Context, cfg *configs.ServerConfig) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	table, err := newBaseline(cfg)
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisConfig.New(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
	}

	tier, err := newPeakTier(ctx, cfg, rdb)
	if err != nil {
		return err
	}
	defer func() {
		if err := tier.close(); err != nil {
			logger.Log.Warn("failed to close peak store", zap.Error(err))
		}
	}()

	r := runner.NewRunner(configs.DefaultShutdownPeriod)

	var upstreamOpts []httpFacades.UpstreamOpt
	if !cfg.CacheDisabled {
		if rdb != nil {
			upstreamOpts = append(upstreamOpts, httpFacades.WithCache(cache.NewRedis(rdb)))
		} else {
			mem := cache.NewMemory()
			r.AddWorker(mem)
			upstreamOpts = append(upstreamOpts, httpFacades.WithCache(mem))
		}
	}
	upstreamOpts = append(upstreamOpts,
		httpFacades.WithBreaker(BreakerName, cfg.BreakerFailures, BreakerOpenFor),
	)

	upstream, err := newUpstreamClient(cfg, upstreamOpts...)
	if err != nil {
		return err
	}
	defer upstream.Wait()

	facade, err := newGamesFacade(cfg, upstream)
	if err != nil {
		return err
	}

	peaks := services.NewPeakService(tier.writer, tier.reader, table)
	stats := services.NewStatsService(facade, facade, peaks)

	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           newRouter(cfg, stats, tier.pinger),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	r.AddHTTPServer(server)
	if tier.worker != nil {
		r.AddWorker(tier.worker)
	}
	r.AddWorker(tracker.NewTracker(stats, cfg.TrackIDs, cfg.TrackInterval))

	logger.Log.Info("starting server",
		zap.String("address", cfg.Address),
		zap.String("games_host", cfg.GamesHost),
		zap.String("groups_host", cfg.GroupsHost),
	)

	return r.Run(ctx)
}

// newBaseline merges the seed file and the inline overrides over the
// compiled-in table. Inline overrides win.
func newBaseline(cfg *configs.ServerConfig) (baseline.Table, error) {
	seed, err := baseline.Load(cfg.BaselineFile)
	if err != nil {
		return nil, err
	}
	return baseline.New(seed, cfg.Baseline), nil
}

// newPeakTier picks redis, then the SQL database, then memory.
func newPeakTier(ctx context.Context, cfg *configs.ServerConfig, rdb *redis.Client) (*peakTier, error) {
	switch {
	case rdb != nil:
		reader := redisRepo.NewPeakReadRepository(rdb)
		logger.Log.Info("peak store: redis")
		return &peakTier{
			writer: redisRepo.NewPeakWriteRepository(rdb),
			reader: reader,
			pinger: reader,
			close:  func() error { return nil },
		}, nil

	case cfg.DatabaseDSN != "":
		driver := db.DriverFromDSN(cfg.DatabaseDSN)

		var opts []db.Opt
		if driver == db.DriverSQLite {
			opts = append(opts, db.WithMaxOpenConns(1))
		}

		conn, err := db.New(ctx, driver, cfg.DatabaseDSN, opts...)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}

		if err := goose.SetDialect(db.Dialect(driver)); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set migrations dialect: %w", err)
		}
		if err := goose.Up(conn.DB, cfg.MigrationsDir); err != nil {
			conn.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}

		reader := dbRepo.NewPeakReadRepository(conn)
		logger.Log.Info("peak store: database", zap.String("driver", driver))
		return &peakTier{
			writer: dbRepo.NewPeakWriteRepository(conn),
			reader: reader,
			pinger: reader,
			close:  conn.Close,
		}, nil

	default:
		store := memory.NewPeakStore()
		writer := memory.NewPeakWriteRepository(store)
		reader := memory.NewPeakReadRepository(store)

		tier := &peakTier{
			writer: writer,
			reader: reader,
			close:  func() error { return nil },
		}

		if cfg.FileStoragePath != "" {
			tier.worker = worker.NewPeakWorker(
				cfg.Restore,
				time.Duration(cfg.StoreInterval)*time.Second,
				reader,
				writer,
				file.NewPeakReadRepository(cfg.FileStoragePath),
				file.NewPeakWriteRepository(cfg.FileStoragePath),
			)
			logger.Log.Info("peak store: memory with snapshot", zap.String("file", cfg.FileStoragePath))
		} else {
			logger.Log.Warn("peak store: memory only, peaks reset to baseline on restart")
		}
		return tier, nil
	}
}

func newUpstreamClient(
	cfg *configs.ServerConfig,
	opts ...httpFacades.UpstreamOpt,
) (*httpFacades.UpstreamClient, error) {
	client, err := httpClient.New("",
		httpClient.WithRetryPolicy(httpClient.RetryPolicy{
			Count:   cfg.Retries,
			Wait:    RetryWait,
			Step:    RetryStep,
			MaxWait: RetryMaxWait,
		}),
		httpClient.WithTimeout(cfg.Timeout),
		httpClient.WithRetryOnStatus(),
		httpClient.WithTransport(&httpFacades.CountingTransport{}),
	)
	if err != nil {
		return nil, fmt.Errorf("build upstream client: %w", err)
	}
	return httpFacades.NewUpstreamClient(client, opts...), nil
}

func newGamesFacade(cfg *configs.ServerConfig, fetcher httpFacades.Fetcher) (*httpFacades.GamesFacade, error) {
	games, err := address.New(cfg.GamesHost)
	if err != nil {
		return nil, fmt.Errorf("games host %q: %w", cfg.GamesHost, err)
	}
	groups, err := address.New(cfg.GroupsHost)
	if err != nil {
		return nil, fmt.Errorf("groups host %q: %w", cfg.GroupsHost, err)
	}

	return httpFacades.NewGamesFacade(fetcher, httpFacades.GamesFacadeConfig{
		GamesHost:  games.String(),
		GroupsHost: groups.String(),
		GamesTTL:   cfg.CacheTTL,
		GroupTTL:   cfg.GroupCacheTTL,
	}), nil
}

// newRouter mounts the stats endpoint on "/" for every method so the
// handler answers OPTIONS and 405 itself.
func newRouter(cfg *configs.ServerConfig, stats *services.StatsService, pinger httpHandlers.Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(httpMiddlewares.LoggingMiddleware)
	r.Use(httpMiddlewares.CORSMiddleware())
	r.Use(httpMiddlewares.CacheControlMiddleware(httpMiddlewares.DefaultCacheControl))
	r.Use(httpMiddlewares.RateLimitMiddleware(cfg.RateLimit))
	r.Use(httpMiddlewares.GzipMiddleware)

	r.HandleFunc("/", httpHandlers.NewStatsHandler(stats, stats))
	r.Get("/ping", httpHandlers.NewPingHandler(pinger))
	r.Handle("/metrics", promhttp.Handler())

	return r
}
