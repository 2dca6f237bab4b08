package worker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gamepeaks/internal/models"
	"github.com/sbilibin2017/gamepeaks/internal/repositories/file"
	"github.com/sbilibin2017/gamepeaks/internal/repositories/memory"
)

func TestPeakWorker_RestoreAndShutdownSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotReader := NewMockSnapshotReader(ctrl)
	snapshotWriter := NewMockSnapshotWriter(ctrl)
	currentReader := NewMockCurrentReader(ctrl)
	currentWriter := NewMockCurrentWriter(ctrl)

	saved := []*models.Peak{
		{Key: "peak:1", Value: 10},
		{Key: "peak:2", Value: 20},
	}

	snapshotReader.EXPECT().List(gomock.Any()).Return(saved, nil)
	currentWriter.EXPECT().Save(gomock.Any(), saved[0]).Return(nil)
	currentWriter.EXPECT().Save(gomock.Any(), saved[1]).Return(nil)
	currentReader.EXPECT().List(gomock.Any()).Return(saved, nil)
	snapshotWriter.EXPECT().SaveAll(gomock.Any(), saved).Return(nil)

	w := NewPeakWorker(true, 0, currentReader, currentWriter, snapshotReader, snapshotWriter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, w.Start(ctx))
}

func TestPeakWorker_PeriodicSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotReader := NewMockSnapshotReader(ctrl)
	snapshotWriter := NewMockSnapshotWriter(ctrl)
	currentReader := NewMockCurrentReader(ctrl)
	currentWriter := NewMockCurrentWriter(ctrl)

	peaks := []*models.Peak{{Key: "peak:1", Value: 10}}
	currentReader.EXPECT().List(gomock.Any()).Return(peaks, nil).MinTimes(2)
	snapshotWriter.EXPECT().SaveAll(gomock.Any(), peaks).Return(nil).MinTimes(2)

	w := NewPeakWorker(false, 20*time.Millisecond, currentReader, currentWriter, snapshotReader, snapshotWriter)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	require.NoError(t, w.Start(ctx))
}

func TestPeakWorker_PeriodicFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currentReader := NewMockCurrentReader(ctrl)
	snapshotWriter := NewMockSnapshotWriter(ctrl)

	gomock.InOrder(
		currentReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom")),
		currentReader.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes(),
	)
	snapshotWriter.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1)

	w := NewPeakWorker(false, 20*time.Millisecond, currentReader, NewMockCurrentWriter(ctrl), NewMockSnapshotReader(ctrl), snapshotWriter)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	assert.NoError(t, w.Start(ctx))
}

func TestPeakWorker_RestoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("read failure", func(t *testing.T) {
		snapshotReader := NewMockSnapshotReader(ctrl)
		readErr := errors.New("corrupted snapshot")
		snapshotReader.EXPECT().List(gomock.Any()).Return(nil, readErr)

		w := NewPeakWorker(true, 0, NewMockCurrentReader(ctrl), NewMockCurrentWriter(ctrl), snapshotReader, NewMockSnapshotWriter(ctrl))
		assert.ErrorIs(t, w.Start(context.Background()), readErr)
	})

	t.Run("write failure", func(t *testing.T) {
		snapshotReader := NewMockSnapshotReader(ctrl)
		currentWriter := NewMockCurrentWriter(ctrl)
		writeErr := errors.New("store closed")
		snapshotReader.EXPECT().List(gomock.Any()).Return([]*models.Peak{{Key: "peak:1", Value: 1}}, nil)
		currentWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(writeErr)

		w := NewPeakWorker(true, 0, NewMockCurrentReader(ctrl), currentWriter, snapshotReader, NewMockSnapshotWriter(ctrl))
		assert.ErrorIs(t, w.Start(context.Background()), writeErr)
	})
}

func TestPeakWorker_FinalSnapshotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currentReader := NewMockCurrentReader(ctrl)
	snapshotWriter := NewMockSnapshotWriter(ctrl)
	saveErr := errors.New("disk full")

	currentReader.EXPECT().List(gomock.Any()).Return(nil, nil)
	snapshotWriter.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(saveErr)

	w := NewPeakWorker(false, 0, currentReader, NewMockCurrentWriter(ctrl), NewMockSnapshotReader(ctrl), snapshotWriter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, w.Start(ctx), saveErr)
}

// Saves are monotone, so observing before restore has finished is safe.
func TestPeakWorker_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peaks.json")

	run := func(observe func(w *memory.PeakWriteRepository)) *memory.PeakReadRepository {
		store := memory.NewPeakStore()
		writeRepo := memory.NewPeakWriteRepository(store)
		readRepo := memory.NewPeakReadRepository(store)

		w := NewPeakWorker(true, 0, readRepo, writeRepo,
			file.NewPeakReadRepository(path), file.NewPeakWriteRepository(path))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Start(ctx) }()

		if observe != nil {
			observe(writeRepo)
		}
		cancel()
		require.NoError(t, <-done)
		return readRepo
	}

	run(func(w *memory.PeakWriteRepository) {
		require.NoError(t, w.Save(context.Background(), &models.Peak{Key: "peak:111", Value: 50}))
	})

	readRepo := run(nil)
	got, err := readRepo.Get(context.Background(), "peak:111")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(50), got.Value)
}
