package runner

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gamepeaks/internal/logger"
)

//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=runner

// Worker defines something that runs until its context is done.
type Worker interface {
	Start(ctx context.Context) error
}

// HTTPServer defines HTTP server interface.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// DefaultShutdownTimeout bounds graceful server shutdown.
const DefaultShutdownTimeout = 5 * time.Second

// Runner coordinates workers and HTTP servers. The first failure stops
// everything else.
type Runner struct {
	mu              sync.Mutex
	workers         []Worker
	servers         []HTTPServer
	shutdownTimeout time.Duration
}

// NewRunner creates a new Runner. A non-positive timeout falls back to
// DefaultShutdownTimeout.
func NewRunner(shutdownTimeout ...time.Duration) *Runner {
	r := &Runner{shutdownTimeout: DefaultShutdownTimeout}
	for _, t := range shutdownTimeout {
		if t > 0 {
			r.shutdownTimeout = t
			break
		}
	}
	return r
}

// AddWorker adds a Worker to be run later.
func (r *Runner) AddWorker(worker Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers = append(r.workers, worker)
}

// AddHTTPServer adds an HTTPServer to be run later.
func (r *Runner) AddHTTPServer(srv HTTPServer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.servers = append(r.servers, srv)
}

// Run starts all workers and servers and blocks until all of them have
// returned. Cancelling ctx shuts them down; the first error cancels the rest
// and is returned.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	workers := append([]Worker(nil), r.workers...)
	servers := append([]HTTPServer(nil), r.servers...)
	r.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		g.Go(func() error {
			return w.Start(gctx)
		})
	}
	for _, srv := range servers {
		g.Go(func() error {
			return r.serve(gctx, srv)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Log.Error("runner stopped with error", zap.Error(err))
		return err
	}
	return nil
}

// serve runs srv until it fails or ctx is done, then shuts it down
// gracefully.
func (r *Runner) serve(ctx context.Context, srv HTTPServer) error {
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.shutdownTimeout)
		defer cancel()
		shutdownErr := srv.Shutdown(shutdownCtx)
		serveErr := ignoreClosed(<-serverErrCh)
		if shutdownErr != nil {
			return shutdownErr
		}
		return serveErr
	case err := <-serverErrCh:
		return ignoreClosed(err)
	}
}

func ignoreClosed(err error) error {
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
