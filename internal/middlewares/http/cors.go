package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS header values sent with every response.
const (
	CORSAllowOrigin  = "*"
	CORSAllowMethods = "GET, OPTIONS"
	CORSAllowHeaders = "Content-Type, Accept"
)

// CORSMiddleware sets permissive CORS headers on every response and lets
// go-chi/cors answer browser preflight requests. Plain OPTIONS requests
// reach the next handler.
func CORSMiddleware() func(http.Handler) http.Handler {
	preflight := cors.Handler(cors.Options{
		AllowedOrigins: []string{CORSAllowOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
		MaxAge:         86400,
	})

	return func(next http.Handler) http.Handler {
		h := preflight(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", CORSAllowOrigin)
			header.Set("Access-Control-Allow-Methods", CORSAllowMethods)
			header.Set("Access-Control-Allow-Headers", CORSAllowHeaders)
			h.ServeHTTP(w, r)
		})
	}
}
