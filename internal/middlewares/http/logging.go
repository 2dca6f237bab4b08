package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sbilibin2017/gamepeaks/internal/logger"
	"github.com/sbilibin2017/gamepeaks/internal/metrics"
)

// LoggingMiddleware logs every request with its outcome and records its
// latency.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)

		logger.Log.Info("request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Duration("duration", duration),
			zap.Int("status", rw.statusCode),
			zap.String("response_size", strconv.Itoa(rw.size)+"B"),
		)

		metrics.RequestDuration.
			WithLabelValues(endpointLabel(r), strconv.Itoa(rw.statusCode)).
			Observe(duration.Seconds())
	})
}

// endpointLabel keeps the label set small: the stats endpoint name for "/",
// the path otherwise.
func endpointLabel(r *http.Request) string {
	if r.URL.Path != "/" {
		return r.URL.Path
	}
	switch e := strings.ToLower(r.URL.Query().Get("endpoint")); e {
	case "games", "group":
		return e
	default:
		return "other"
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	size        int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
