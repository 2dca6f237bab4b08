package apps

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gamepeaks/internal/configs"
	"github.com/sbilibin2017/gamepeaks/internal/models"
)

var testClient = &http.Client{Timeout: 10 * time.Second}

func getFreePort(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().String()
}

// fakeUpstream serves the games, votes and groups resources. playing is read
// on every games call so tests can move the observed value.
type fakeUpstream struct {
	*httptest.Server
	playing    atomic.Int64
	gameCalls  atomic.Int32
	groupCalls atomic.Int32
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	up := &fakeUpstream{}
	up.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/v1/games":
			up.gameCalls.Add(1)
			fmt.Fprintf(w, `{"data":[
				{"id":1,"name":"One","playing":%d,"visits":1000,"favoritedCount":12},
				{"id":8357236286,"name":"Crush","playing":1200,"visits":"5000","favoritedCount":null}
			]}`, up.playing.Load())
		case r.URL.Path == "/v1/games/votes":
			fmt.Fprint(w, `{"data":[{"id":1,"upVotes":9,"downVotes":2}]}`)
		case strings.HasPrefix(r.URL.Path, "/v1/groups/"):
			up.groupCalls.Add(1)
			fmt.Fprint(w, `{"id":7,"memberCount":4321}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(up.Close)
	return up
}

type gamesBody struct {
	OK   bool                `json:"ok"`
	Data []models.GameMetric `json:"data"`
}

// startServer runs RunServer in the background and waits for /ping. The
// returned stop cancels the server and returns its result.
func startServer(t *testing.T, opts ...configs.ServerConfigOpt) (string, func() error) {
	addr := getFreePort(t)

	cfg, err := configs.NewServerConfig(append([]configs.ServerConfigOpt{configs.WithAddress(addr)}, opts...)...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunServer(ctx, cfg)
	}()

	base := "http://" + addr
	require.Eventually(t, func() bool {
		resp, err := testClient.Get(base + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	stopped := false
	stop := func() error {
		if stopped {
			return nil
		}
		stopped = true
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(10 * time.Second):
			return fmt.Errorf("server did not stop")
		}
	}
	t.Cleanup(func() { _ = stop() })

	return base, stop
}

func getGames(t *testing.T, base, ids string) gamesBody {
	resp, err := testClient.Get(base + "/?endpoint=games&ids=" + ids)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body gamesBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRunServer_MemoryWithSnapshot(t *testing.T) {
	up := newFakeUpstream(t)
	up.playing.Store(50)

	snapshot := filepath.Join(t.TempDir(), "peaks.json")
	base, stop := startServer(t,
		configs.WithGamesHost(up.URL),
		configs.WithGroupsHost(up.URL),
		configs.WithCacheDisabled(true),
		configs.WithFileStoragePath(snapshot),
		configs.WithStoreInterval(0),
	)

	body := getGames(t, base, "1,8357236286")
	require.True(t, body.OK)
	require.Len(t, body.Data, 2)

	assert.Equal(t, int64(1), body.Data[0].ID)
	assert.Equal(t, models.NewNullInt(50), body.Data[0].Playing)
	assert.Equal(t, int64(50), body.Data[0].PeakPlaying)
	assert.Equal(t, models.NewNullInt(9), body.Data[0].UpVotes)
	assert.Equal(t, models.NewNullInt(2), body.Data[0].DownVotes)

	assert.Equal(t, int64(8357236286), body.Data[1].ID)
	assert.Equal(t, int64(16500), body.Data[1].PeakPlaying)
	assert.Equal(t, models.NewNullInt(5000), body.Data[1].Visits)
	assert.False(t, body.Data[1].FavoritedCount.Valid)
	assert.False(t, body.Data[1].UpVotes.Valid)

	up.playing.Store(30)
	body = getGames(t, base, "1")
	assert.Equal(t, models.NewNullInt(30), body.Data[0].Playing)
	assert.Equal(t, int64(50), body.Data[0].PeakPlaying)

	up.playing.Store(80)
	body = getGames(t, base, "1")
	assert.Equal(t, int64(80), body.Data[0].PeakPlaying)

	require.NoError(t, stop())

	data, err := os.ReadFile(snapshot)
	require.NoError(t, err)
	assert.Equal(t,
		`{"key":"peak:1","value":80}`+"\n"+`{"key":"peak:8357236286","value":16500}`+"\n",
		string(data),
	)

	// A restart restores the snapshot: a lower observation keeps the peak.
	up.playing.Store(10)
	base, stop = startServer(t,
		configs.WithGamesHost(up.URL),
		configs.WithGroupsHost(up.URL),
		configs.WithCacheDisabled(true),
		configs.WithFileStoragePath(snapshot),
	)
	body = getGames(t, base, "1")
	assert.Equal(t, int64(80), body.Data[0].PeakPlaying)
	require.NoError(t, stop())
}

func TestRunServer_GroupAndErrors(t *testing.T) {
	up := newFakeUpstream(t)
	base, stop := startServer(t,
		configs.WithGamesHost(up.URL),
		configs.WithGroupsHost(up.URL),
	)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "group member count",
			method:     http.MethodGet,
			target:     "/?endpoint=group&groupId=7",
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"memberCount":4321}`,
		},
		{
			name:       "missing ids",
			method:     http.MethodGet,
			target:     "/?endpoint=games&ids=,%20,",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"ok":false,"error":"Missing ids"}`,
		},
		{
			name:       "unknown endpoint",
			method:     http.MethodGet,
			target:     "/?endpoint=nope",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"ok":false,"error":"Unknown endpoint"}`,
		},
		{
			name:       "post rejected",
			method:     http.MethodPost,
			target:     "/?endpoint=games&ids=1",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"ok":false,"error":"Method Not Allowed"}`,
		},
		{
			name:       "options",
			method:     http.MethodOptions,
			target:     "/?endpoint=games&ids=1",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, base+tt.target, nil)
			require.NoError(t, err)

			resp, err := testClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody == "" {
				assert.Empty(t, body)
			} else {
				assert.JSONEq(t, tt.wantBody, string(body))
			}
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "public, max-age=15, stale-while-revalidate=30", resp.Header.Get("Cache-Control"))
		})
	}

	require.NoError(t, stop())
}

func TestRunServer_ResponseCache(t *testing.T) {
	up := newFakeUpstream(t)
	up.playing.Store(5)

	base, stop := startServer(t,
		configs.WithGamesHost(up.URL),
		configs.WithGroupsHost(up.URL),
	)

	getGames(t, base, "1")
	require.Eventually(t, func() bool {
		before := up.gameCalls.Load()
		getGames(t, base, "1")
		return up.gameCalls.Load() == before
	}, 2*time.Second, 50*time.Millisecond)

	resp, err := testClient.Get(base + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	metricsBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(metricsBody), "gamepeaks_cache_lookups_total")
	assert.Contains(t, string(metricsBody), "gamepeaks_peak_writes_total")

	require.NoError(t, stop())
}

func TestRunServer_SQLite(t *testing.T) {
	up := newFakeUpstream(t)
	up.playing.Store(64)

	dsn := filepath.Join(t.TempDir(), "peaks.db")
	opts := []configs.ServerConfigOpt{
		configs.WithGamesHost(up.URL),
		configs.WithGroupsHost(up.URL),
		configs.WithCacheDisabled(true),
		configs.WithDatabaseDSN(dsn),
		configs.WithMigrationsDir("../../migrations"),
	}

	base, stop := startServer(t, opts...)
	body := getGames(t, base, "1")
	assert.Equal(t, int64(64), body.Data[0].PeakPlaying)
	require.NoError(t, stop())

	up.playing.Store(1)
	base, stop = startServer(t, opts...)
	body = getGames(t, base, "1")
	assert.Equal(t, int64(64), body.Data[0].PeakPlaying)
	require.NoError(t, stop())
}

func TestRunServer_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		opts    []configs.ServerConfigOpt
		wantErr string
	}{
		{
			name:    "unsupported games scheme",
			opts:    []configs.ServerConfigOpt{configs.WithGamesHost("ftp://games.example")},
			wantErr: "games host",
		},
		{
			name:    "missing baseline file",
			opts:    []configs.ServerConfigOpt{configs.WithBaselineFile(filepath.Join(t.TempDir(), "missing.json"))},
			wantErr: "missing.json",
		},
		{
			name:    "bad redis url",
			opts:    []configs.ServerConfigOpt{configs.WithRedisURL("not-a-url")},
			wantErr: "connect to redis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]configs.ServerConfigOpt{configs.WithAddress(getFreePort(t))}, tt.opts...)
			cfg, err := configs.NewServerConfig(opts...)
			require.NoError(t, err)

			err = RunServer(context.Background(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
