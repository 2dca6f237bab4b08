package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gamepeaks/internal/logger"
	"github.com/sbilibin2017/gamepeaks/internal/models"
	"github.com/sbilibin2017/gamepeaks/internal/services"
)

//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=http

// GameStatsGetter returns normalized game records.
type GameStatsGetter interface {
	GetGameStats(ctx context.Context, ids []string) ([]models.GameMetric, error)
}

// GroupMembersGetter returns a group's member count.
type GroupMembersGetter interface {
	GetGroupMembers(ctx context.Context, groupID string) (models.NullInt, error)
}

// ContentTypeJSON is sent with every stats response.
const ContentTypeJSON = "application/json; charset=utf-8"

// Error messages returned to the caller.
const (
	MsgMissingIDs       = "Missing ids"
	MsgMissingGroupID   = "Missing groupId"
	MsgUnknownEndpoint  = "Unknown endpoint"
	MsgMethodNotAllowed = "Method Not Allowed"
)

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type gamesResponse struct {
	OK   bool                `json:"ok"`
	Data []models.GameMetric `json:"data"`
}

type groupResponse struct {
	OK          bool           `json:"ok"`
	MemberCount models.NullInt `json:"memberCount"`
}

// NewStatsHandler serves game stats and group member counts.
//
// @Summary Game stats and group member count
// @Description endpoint=games returns one record per id with a tracked peak, endpoint=group returns the member count
// @Tags stats
// @Produce json
// @Param endpoint query string true "games or group"
// @Param ids query string false "Comma-separated game ids (endpoint=games)"
// @Param groupId query string false "Group id (endpoint=group)"
// @Success 200 {object} gamesResponse
// @Success 204 "Preflight"
// @Failure 400 {object} errorResponse
// @Failure 405 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router / [get]
func NewStatsHandler(games GameStatsGetter, groups GroupMembersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ContentTypeJSON)

		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodGet:
		default:
			writeError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
			return
		}

		ctx := r.Context()
		query := r.URL.Query()

		switch strings.ToLower(strings.TrimSpace(query.Get("endpoint"))) {
		case "games":
			ids := models.ParseIDs(query.Get("ids"))
			if len(ids) == 0 {
				writeError(w, http.StatusBadRequest, MsgMissingIDs)
				return
			}

			data, err := games.GetGameStats(ctx, ids)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			if data == nil {
				data = []models.GameMetric{}
			}
			writeJSON(w, http.StatusOK, gamesResponse{OK: true, Data: data})

		case "group":
			groupID := strings.TrimSpace(query.Get("groupId"))
			if groupID == "" {
				writeError(w, http.StatusBadRequest, MsgMissingGroupID)
				return
			}

			count, err := groups.GetGroupMembers(ctx, groupID)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, groupResponse{OK: true, MemberCount: count})

		default:
			writeError(w, http.StatusBadRequest, MsgUnknownEndpoint)
		}
	}
}

// writeServiceError maps invalid input to 400 and everything else to 502.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrInvalidRequest) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Log.Warn("stats request failed",
		zap.String("uri", r.RequestURI),
		zap.Error(err),
	)
	writeError(w, http.StatusBadGateway, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{OK: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Debug("failed to write response", zap.Error(err))
	}
}
