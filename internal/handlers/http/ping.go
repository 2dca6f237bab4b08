package http

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=ping.go -destination=ping_mock.go -package=http

// Pinger checks that a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewPingHandler returns an HTTP handler function that checks the peak store
// connection.
//
// @Summary Health check
// @Tags health
// @Success 200 "OK"
// @Failure 500 "Internal Server Error"
// @Router /ping [get]
func NewPingHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		if err := pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
