package httpclient

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

func calls() {
	_, _ = http.Get("http://example.com")                             // want "http.Get uses http.DefaultClient, which has no timeout"
	_, _ = http.Head("http://example.com")                            // want "http.Head uses http.DefaultClient, which has no timeout"
	_, _ = http.Post("http://example.com", "", strings.NewReader("")) // want "http.Post uses http.DefaultClient, which has no timeout"
	_, _ = http.PostForm("http://example.com", url.Values{})          // want "http.PostForm uses http.DefaultClient, which has no timeout"

	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	_, _ = http.DefaultClient.Do(req) // want "http.DefaultClient has no timeout"
}

func clients() {
	_ = &http.Client{} // want "http.Client without Timeout"
	_ = http.Client{   // want "http.Client without Timeout"
		Transport: http.DefaultTransport,
	}

	_ = &http.Client{Timeout: 5 * time.Second}
	bounded := &http.Client{Timeout: time.Second}
	_, _ = bounded.Get("http://example.com")
	_, _ = bounded.Head("http://example.com")
	_, _ = bounded.Post("http://example.com", "", strings.NewReader(""))
}
