package http

import "net/http"

// DefaultCacheControl lets intermediaries absorb duplicate polling.
const DefaultCacheControl = "public, max-age=15, stale-while-revalidate=30"

// CacheControlMiddleware sets the Cache-Control header on every response.
func CacheControlMiddleware(value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}
