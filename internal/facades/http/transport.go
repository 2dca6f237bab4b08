package http

import (
	"net/http"

	"github.com/sbilibin2017/gamepeaks/internal/metrics"
)

// CountingTransport counts every network attempt per upstream host.
type CountingTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *CountingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	metrics.UpstreamAttempts.WithLabelValues(req.URL.Host).Inc()

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
