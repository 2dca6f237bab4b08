package runner

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingServer returns a mock whose ListenAndServe blocks until Shutdown.
func blockingServer(ctrl *gomock.Controller, shutdownErr error) *MockHTTPServer {
	srv := NewMockHTTPServer(ctrl)
	stopped := make(chan struct{})
	srv.EXPECT().ListenAndServe().DoAndReturn(func() error {
		<-stopped
		return http.ErrServerClosed
	})
	srv.EXPECT().Shutdown(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(stopped)
		return shutdownErr
	})
	return srv
}

func TestRunner_RunWorkerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorker := NewMockWorker(ctrl)
	mockWorker.EXPECT().Start(gomock.Any()).Return(nil).Times(1)

	r := NewRunner()
	r.AddWorker(mockWorker)

	require.NoError(t, r.Run(context.Background()))
}

func TestRunner_RunWorkerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedErr := errors.New("worker failed")
	mockWorker := NewMockWorker(ctrl)
	mockWorker.EXPECT().Start(gomock.Any()).Return(expectedErr).Times(1)

	r := NewRunner()
	r.AddWorker(mockWorker)

	require.EqualError(t, r.Run(context.Background()), expectedErr.Error())
}

func TestRunner_WorkerErrorStopsServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedErr := errors.New("restore failed")
	mockWorker := NewMockWorker(ctrl)
	mockWorker.EXPECT().Start(gomock.Any()).Return(expectedErr)

	r := NewRunner(time.Second)
	r.AddWorker(mockWorker)
	r.AddHTTPServer(blockingServer(ctrl, nil))

	assert.ErrorIs(t, r.Run(context.Background()), expectedErr)
}

func TestRunner_GracefulShutdownWaitsForWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finished := make(chan struct{})
	mockWorker := NewMockWorker(ctrl)
	mockWorker.EXPECT().Start(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		close(finished)
		return nil
	})

	r := NewRunner()
	r.AddWorker(mockWorker)
	r.AddHTTPServer(blockingServer(ctrl, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, r.Run(ctx))

	select {
	case <-finished:
	default:
		t.Fatal("Run returned before the worker finished")
	}
}

func TestRunner_ShutdownError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shutdownErr := errors.New("shutdown failed")

	r := NewRunner()
	r.AddHTTPServer(blockingServer(ctrl, shutdownErr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Run(ctx), shutdownErr)
}

func TestRunner_ServerFailsToListen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listenErr := errors.New("address already in use")
	srv := NewMockHTTPServer(ctrl)
	srv.EXPECT().ListenAndServe().Return(listenErr)

	r := NewRunner()
	r.AddHTTPServer(srv)

	assert.ErrorIs(t, r.Run(context.Background()), listenErr)
}

func TestRunner_ServerClosedIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := NewMockHTTPServer(ctrl)
	srv.EXPECT().ListenAndServe().Return(http.ErrServerClosed)

	r := NewRunner()
	r.AddHTTPServer(srv)

	assert.NoError(t, r.Run(context.Background()))
}

func TestNewRunner_ShutdownTimeout(t *testing.T) {
	assert.Equal(t, DefaultShutdownTimeout, NewRunner().shutdownTimeout)
	assert.Equal(t, DefaultShutdownTimeout, NewRunner(0).shutdownTimeout)
	assert.Equal(t, time.Second, NewRunner(-1, time.Second).shutdownTimeout)
}
