package services

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gamepeaks/internal/baseline"
	"github.com/sbilibin2017/gamepeaks/internal/models"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i + 1)
	}
	return ids
}

func echoGames(_ context.Context, ids []string) ([]models.GameInfo, error) {
	games := make([]models.GameInfo, 0, len(ids))
	for _, id := range ids {
		n, _ := strconv.ParseInt(id, 10, 64)
		games = append(games, models.GameInfo{ID: n, Playing: models.NewNullInt(1)})
	}
	return games, nil
}

func TestStatsService_GetGameStats_Scenarios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockGames := NewMockGameFetcher(ctrl)
	mockGroups := NewMockGroupFetcher(ctrl)
	svc := NewStatsService(mockGames, mockGroups, newMemoryPeakService(baseline.New()))

	ids := []string{"111", "222"}

	mockGames.EXPECT().FetchGames(gomock.Any(), ids).Return([]models.GameInfo{
		{ID: 111, Name: "A", Playing: models.NewNullInt(50), Visits: models.NewNullInt(1000)},
		{ID: 222, Name: "B", Playing: models.NewNullInt(5)},
	}, nil)
	mockGames.EXPECT().FetchVotes(gomock.Any(), ids).Return([]models.GameVotes{
		{ID: 111, UpVotes: models.NewNullInt(9), DownVotes: models.NewNullInt(1)},
	}, nil)

	got, err := svc.GetGameStats(ctx, ids)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.GameMetric{
		ID:          111,
		Name:        "A",
		Playing:     models.NewNullInt(50),
		Visits:      models.NewNullInt(1000),
		PeakPlaying: 50,
		UpVotes:     models.NewNullInt(9),
		DownVotes:   models.NewNullInt(1),
	}, got[0])
	assert.Equal(t, int64(222), got[1].ID)
	assert.False(t, got[1].UpVotes.Valid)
	assert.False(t, got[1].DownVotes.Valid)

	// Later observation lower than the stored peak.
	mockGames.EXPECT().FetchGames(gomock.Any(), []string{"111"}).Return([]models.GameInfo{
		{ID: 111, Name: "A", Playing: models.NewNullInt(10)},
	}, nil)
	mockGames.EXPECT().FetchVotes(gomock.Any(), []string{"111"}).Return(nil, nil)

	got, err = svc.GetGameStats(ctx, []string{"111"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.NewNullInt(10), got[0].Playing)
	assert.Equal(t, int64(50), got[0].PeakPlaying)
}

func TestStatsService_GetGameStats_Batching(t *testing.T) {
	tests := []struct {
		name        string
		ids         int
		wantBatches []int
	}{
		{name: "single id", ids: 1, wantBatches: []int{1}},
		{name: "exactly one batch", ids: 100, wantBatches: []int{100}},
		{name: "one over", ids: 101, wantBatches: []int{100, 1}},
		{name: "three batches", ids: 250, wantBatches: []int{100, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGames := NewMockGameFetcher(ctrl)
			mockGroups := NewMockGroupFetcher(ctrl)
			mockPeaks := NewMockPeakUpdater(ctrl)

			var gameBatches, voteBatches []int
			mockGames.EXPECT().FetchGames(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, ids []string) ([]models.GameInfo, error) {
					gameBatches = append(gameBatches, len(ids))
					return echoGames(ctx, ids)
				}).Times(len(tt.wantBatches))
			mockGames.EXPECT().FetchVotes(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ids []string) ([]models.GameVotes, error) {
					voteBatches = append(voteBatches, len(ids))
					return nil, nil
				}).Times(len(tt.wantBatches))
			mockPeaks.EXPECT().Update(gomock.Any(), gomock.Any(), models.NewNullInt(1)).
				Return(int64(1), nil).Times(tt.ids)

			got, err := NewStatsService(mockGames, mockGroups, mockPeaks).GetGameStats(context.Background(), makeIDs(tt.ids))
			require.NoError(t, err)
			require.Len(t, got, tt.ids)
			for i, m := range got {
				assert.Equal(t, int64(i+1), m.ID, "order must follow the request")
			}
			assert.Equal(t, tt.wantBatches, gameBatches)
			assert.Equal(t, tt.wantBatches, voteBatches)
		})
	}
}

func TestStatsService_GetGameStats_Failures(t *testing.T) {
	upstreamErr := errors.New("upstream HTTP 503")

	tests := []struct {
		name     string
		gamesErr error
		votesErr error
	}{
		{name: "games call fails", gamesErr: upstreamErr},
		{name: "votes call fails", votesErr: upstreamErr},
		{name: "both fail", gamesErr: upstreamErr, votesErr: upstreamErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGames := NewMockGameFetcher(ctrl)
			mockGroups := NewMockGroupFetcher(ctrl)
			mockPeaks := NewMockPeakUpdater(ctrl)

			mockGames.EXPECT().FetchGames(gomock.Any(), gomock.Any()).
				Return([]models.GameInfo{{ID: 1}}, tt.gamesErr).AnyTimes()
			mockGames.EXPECT().FetchVotes(gomock.Any(), gomock.Any()).
				Return(nil, tt.votesErr).AnyTimes()

			got, err := NewStatsService(mockGames, mockGroups, mockPeaks).GetGameStats(context.Background(), []string{"1"})
			assert.ErrorIs(t, err, upstreamErr)
			assert.Nil(t, got)
		})
	}
}

func TestStatsService_GetGameStats_SecondBatchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGames := NewMockGameFetcher(ctrl)
	mockGroups := NewMockGroupFetcher(ctrl)
	mockPeaks := NewMockPeakUpdater(ctrl)

	var calls atomic.Int32
	upstreamErr := errors.New("upstream HTTP 500")
	mockGames.EXPECT().FetchGames(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []string) ([]models.GameInfo, error) {
			if calls.Add(1) == 2 {
				return nil, upstreamErr
			}
			return echoGames(ctx, ids)
		}).Times(2)
	mockGames.EXPECT().FetchVotes(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	mockPeaks.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(100)

	got, err := NewStatsService(mockGames, mockGroups, mockPeaks).GetGameStats(context.Background(), makeIDs(101))
	assert.ErrorIs(t, err, upstreamErr)
	assert.Nil(t, got, "no partial data")
}

func TestStatsService_GetGameStats_PeakFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGames := NewMockGameFetcher(ctrl)
	mockGroups := NewMockGroupFetcher(ctrl)
	mockPeaks := NewMockPeakUpdater(ctrl)

	storeErr := errors.New("store unavailable")
	mockGames.EXPECT().FetchGames(gomock.Any(), gomock.Any()).DoAndReturn(echoGames)
	mockGames.EXPECT().FetchVotes(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockPeaks.EXPECT().Update(gomock.Any(), "1", gomock.Any()).Return(int64(0), storeErr)

	_, err := NewStatsService(mockGames, mockGroups, mockPeaks).GetGameStats(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, storeErr)
}

func TestStatsService_GetGameStats_NoIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewStatsService(NewMockGameFetcher(ctrl), NewMockGroupFetcher(ctrl), NewMockPeakUpdater(ctrl))
	_, err := svc.GetGameStats(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestStatsService_GetGroupMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		groupID   string
		setup     func(m *MockGroupFetcher)
		want      models.NullInt
		wantErrIs error
	}{
		{
			name:    "member count",
			groupID: "999",
			setup: func(m *MockGroupFetcher) {
				m.EXPECT().FetchGroup(ctx, "999").Return(&models.Group{MemberCount: models.NewNullInt(1234)}, nil)
			},
			want: models.NewNullInt(1234),
		},
		{
			name:    "null member count",
			groupID: " 5 ",
			setup: func(m *MockGroupFetcher) {
				m.EXPECT().FetchGroup(ctx, "5").Return(&models.Group{}, nil)
			},
		},
		{
			name:      "empty id",
			groupID:   "  ",
			setup:     func(m *MockGroupFetcher) {},
			wantErrIs: ErrInvalidRequest,
		},
		{
			name:    "upstream failure",
			groupID: "1",
			setup: func(m *MockGroupFetcher) {
				m.EXPECT().FetchGroup(ctx, "1").Return(nil, context.DeadlineExceeded)
			},
			wantErrIs: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGroups := NewMockGroupFetcher(ctrl)
			tt.setup(mockGroups)

			svc := NewStatsService(NewMockGameFetcher(ctrl), mockGroups, NewMockPeakUpdater(ctrl))
			got, err := svc.GetGroupMembers(ctx, tt.groupID)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoin(t *testing.T) {
	games := []models.GameInfo{
		{ID: 3, Name: "C", Playing: models.NewNullInt(7)},
		{ID: 1, Name: "A", Playing: models.NullInt{}},
		{ID: 2, Name: "B", Playing: models.NewNullInt(2)},
	}
	votes := []models.GameVotes{
		{ID: 2, UpVotes: models.NewNullInt(20), DownVotes: models.NewNullInt(2)},
		{ID: 3, UpVotes: models.NewNullInt(30), DownVotes: models.NullInt{}},
		{ID: 99, UpVotes: models.NewNullInt(1), DownVotes: models.NewNullInt(1)},
	}
	peak := func(id int64, playing models.NullInt) (int64, error) {
		return 100 + playing.ValueOrZero(), nil
	}

	first, err := Join(games, votes, peak)
	require.NoError(t, err)
	second, err := Join(games, votes, peak)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.Len(t, first, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{first[0].ID, first[1].ID, first[2].ID})
	assert.Equal(t, int64(107), first[0].PeakPlaying)
	assert.Equal(t, models.NewNullInt(30), first[0].UpVotes)
	assert.False(t, first[0].DownVotes.Valid)
	assert.False(t, first[1].UpVotes.Valid, "missing votes default to null")
	assert.False(t, first[1].DownVotes.Valid)
	assert.Equal(t, int64(100), first[1].PeakPlaying)
	assert.Equal(t, models.NewNullInt(2), first[2].DownVotes)
}

func TestJoin_Empty(t *testing.T) {
	got, err := Join(nil, nil, func(int64, models.NullInt) (int64, error) { return 0, nil })
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
