package http

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gamepeaks/internal/logger"
	"github.com/sbilibin2017/gamepeaks/internal/metrics"
)

//go:generate mockgen -source=upstream.go -destination=upstream_mock.go -package=http

// Cache is the response cache consulted before any network attempt.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// UpstreamError reports an upstream call whose final attempt returned a
// non-2xx status.
type UpstreamError struct {
	URL        string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream HTTP %d", e.StatusCode)
}

// DefaultCacheWriteTimeout bounds a detached cache write.
const DefaultCacheWriteTimeout = 2 * time.Second

// UpstreamClient performs GET requests against the external API. Retries,
// backoff and the per-attempt timeout live in the resty client it wraps.
type UpstreamClient struct {
	client            *resty.Client
	cache             Cache
	breaker           *gobreaker.CircuitBreaker[[]byte]
	cacheWriteTimeout time.Duration
	detached          sync.WaitGroup
}

// UpstreamOpt configures an UpstreamClient.
type UpstreamOpt func(*UpstreamClient)

// WithCache enables response caching keyed by the exact request URL.
func WithCache(cache Cache) UpstreamOpt {
	return func(c *UpstreamClient) {
		c.cache = cache
	}
}

// WithBreaker opens a circuit after the given number of consecutive failed
// fetches. The circuit half-opens after openFor. failures <= 0 disables it.
func WithBreaker(name string, failures int, openFor time.Duration) UpstreamOpt {
	return func(c *UpstreamClient) {
		if failures <= 0 {
			return
		}
		metrics.BreakerState.WithLabelValues(name).Set(0)
		c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     openFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= uint32(failures)
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Log.Info("upstream circuit state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
				metrics.BreakerState.WithLabelValues(name).Set(stateValue(to))
			},
		})
	}
}

// WithCacheWriteTimeout bounds detached cache writes.
func WithCacheWriteTimeout(d time.Duration) UpstreamOpt {
	return func(c *UpstreamClient) {
		if d > 0 {
			c.cacheWriteTimeout = d
		}
	}
}

// NewUpstreamClient wraps a configured resty client.
func NewUpstreamClient(client *resty.Client, opts ...UpstreamOpt) *UpstreamClient {
	c := &UpstreamClient{
		client:            client,
		cacheWriteTimeout: DefaultCacheWriteTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	client.AddRetryHook(func(r *resty.Response, err error) {
		fields := []zap.Field{zap.Error(err)}
		if r != nil && r.Request != nil {
			fields = append(fields,
				zap.String("url", r.Request.URL),
				zap.Int("attempt", r.Request.Attempt),
				zap.Int("status", r.StatusCode()),
			)
		}
		logger.Log.Warn("upstream attempt failed, retrying", fields...)
	})

	return c
}

// Fetch returns the body of a successful GET to rawURL.
//
// A cache hit returns immediately without touching the network. Otherwise the
// request is attempted up to retries+1 times; when every attempt fails the
// last error is returned. A fresh body is written to the cache in the
// background with the given ttl.
func (c *UpstreamClient) Fetch(ctx context.Context, resource, rawURL string, ttl time.Duration) ([]byte, error) {
	if body, ok := c.lookup(ctx, rawURL); ok {
		return body, nil
	}

	var (
		body []byte
		err  error
	)
	if c.breaker != nil {
		body, err = c.breaker.Execute(func() ([]byte, error) {
			return c.get(ctx, rawURL)
		})
	} else {
		body, err = c.get(ctx, rawURL)
	}

	if err != nil {
		outcome := metrics.OutcomeFailure
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = metrics.OutcomeRejected
		}
		metrics.UpstreamRequests.WithLabelValues(resource, outcome).Inc()
		return nil, err
	}

	metrics.UpstreamRequests.WithLabelValues(resource, metrics.OutcomeSuccess).Inc()
	c.store(rawURL, body, ttl)
	return body, nil
}

// Wait blocks until all detached cache writes have finished.
func (c *UpstreamClient) Wait() {
	c.detached.Wait()
}

func (c *UpstreamClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &UpstreamError{URL: rawURL, StatusCode: resp.StatusCode()}
	}
	return resp.Body(), nil
}

func (c *UpstreamClient) lookup(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	body, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		logger.Log.Debug("response cache lookup failed", zap.String("url", key), zap.Error(err))
		return nil, false
	case !ok:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	default:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return body, true
	}
}

// store populates the cache without blocking the caller. Failures are only
// logged.
func (c *UpstreamClient) store(key string, body []byte, ttl time.Duration) {
	if c.cache == nil || ttl <= 0 {
		return
	}

	c.detached.Add(1)
	go func() {
		defer c.detached.Done()

		ctx, cancel := context.WithTimeout(context.Background(), c.cacheWriteTimeout)
		defer cancel()

		if err := c.cache.Set(ctx, key, body, ttl); err != nil {
			logger.Log.Debug("response cache write failed", zap.String("url", key), zap.Error(err))
		}
	}()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
