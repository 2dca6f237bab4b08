package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNewPingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "reachable", wantStatus: http.StatusOK},
		{name: "unreachable", pingErr: errors.New("dial tcp: connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := NewMockPinger(ctrl)
			pinger.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			rec := httptest.NewRecorder()
			NewPingHandler(pinger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewPingHandler_NoStore(t *testing.T) {
	rec := httptest.NewRecorder()
	NewPingHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
