package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheControlMiddleware(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "default", value: DefaultCacheControl, want: "public, max-age=15, stale-while-revalidate=30"},
		{name: "no store", value: "no-store", want: "no-store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CacheControlMiddleware(tt.value)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?endpoint=games&ids=1", nil))

			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Cache-Control"))
		})
	}
}
