package http

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gamepeaks/internal/configs/compressor"
)

var responseCompressor = compressor.New(gzip.BestSpeed)

// GzipMiddleware compresses JSON and HTML responses for clients that accept
// gzip. The response is buffered so Content-Length can be set.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzw := newGzipBufferResponseWriter(w)
		next.ServeHTTP(gzw, r)
		_ = gzw.Flush()
	})
}

// gzipBufferResponseWriter buffers the status and body until Flush.
type gzipBufferResponseWriter struct {
	http.ResponseWriter
	buf        *bytes.Buffer
	statusCode int
	captured   bool
}

func newGzipBufferResponseWriter(w http.ResponseWriter) *gzipBufferResponseWriter {
	return &gzipBufferResponseWriter{
		ResponseWriter: w,
		buf:            &bytes.Buffer{},
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code.
func (w *gzipBufferResponseWriter) WriteHeader(statusCode int) {
	if !w.captured {
		w.statusCode = statusCode
		w.captured = true
	}
}

// Write buffers the response body bytes.
func (w *gzipBufferResponseWriter) Write(b []byte) (int, error) {
	w.captured = true
	return w.buf.Write(b)
}

// Flush writes the recorded status and the possibly compressed body to the
// underlying writer.
func (w *gzipBufferResponseWriter) Flush() error {
	body := w.buf.Bytes()

	contentType := strings.ToLower(w.Header().Get("Content-Type"))
	compressible := strings.Contains(contentType, "application/json") || strings.Contains(contentType, "text/html")

	if compressible && len(body) > 0 {
		compressed, err := responseCompressor.Compress(body)
		if err != nil {
			return err
		}
		body = compressed
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
	}

	if len(body) > 0 {
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	}
	w.ResponseWriter.WriteHeader(w.statusCode)
	if len(body) == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(body)
	return err
}
