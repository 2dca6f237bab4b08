package http

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Opt defines a function type that configures a *resty.Client and may return an error.
// It is used for modular configuration of the client.
type Opt func(*resty.Client) error

// New creates and returns a new instance of resty.Client with the given base URL and options.
// Every request asks for JSON.
func New(baseURL string, opts ...Opt) (*resty.Client, error) {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// RetryPolicy describes the parameters for HTTP request retry logic.
//
// Attempts are spaced linearly: the wait after attempt n (zero-based) is
// Wait + n*Step. MaxWait caps a single wait.
type RetryPolicy struct {
	Count   int           // Number of retry attempts after the first one
	Wait    time.Duration // Wait after the first failed attempt
	Step    time.Duration // Extra wait added for every further attempt
	MaxWait time.Duration // Upper bound for a single wait
}

// DefaultRetryPolicy waits 250ms, 600ms, 950ms, ... between attempts.
var DefaultRetryPolicy = RetryPolicy{
	Count:   2,
	Wait:    250 * time.Millisecond,
	Step:    350 * time.Millisecond,
	MaxWait: 30 * time.Second,
}

// WithRetryPolicy returns an Opt that applies the first valid retry policy from the provided list.
// A policy is considered valid if at least one of its fields is greater than zero.
// If no valid policies are found, the client remains unchanged.
func WithRetryPolicy(policies ...RetryPolicy) Opt {
	return func(c *resty.Client) error {
		for _, policy := range policies {
			if policy.Count > 0 || policy.Wait > 0 || policy.Step > 0 || policy.MaxWait > 0 {
				if policy.Count > 0 {
					c.SetRetryCount(policy.Count)
				}
				if policy.Wait > 0 {
					c.SetRetryWaitTime(policy.Wait)
				}
				if policy.MaxWait > 0 {
					c.SetRetryMaxWaitTime(policy.MaxWait)
				}
				if policy.Wait > 0 {
					c.SetRetryAfter(linearBackoff(policy.Wait, policy.Step))
				}
				break
			}
		}
		return nil
	}
}

// linearBackoff computes the wait from the attempt counter resty keeps on
// the request (1 after the first attempt).
func linearBackoff(wait, step time.Duration) resty.RetryAfterFunc {
	return func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
		attempt := 1
		if resp != nil && resp.Request != nil && resp.Request.Attempt > 0 {
			attempt = resp.Request.Attempt
		}
		return wait + time.Duration(attempt-1)*step, nil
	}
}

// WithTimeout bounds every single attempt. The underlying request is
// cancelled when the timeout fires.
func WithTimeout(timeouts ...time.Duration) Opt {
	return func(c *resty.Client) error {
		for _, t := range timeouts {
			if t > 0 {
				c.SetTimeout(t)
				break
			}
		}
		return nil
	}
}

// WithRetryOnStatus makes any transport error or non-2xx status retryable.
func WithRetryOnStatus() Opt {
	return func(c *resty.Client) error {
		c.AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil || r == nil {
				return true
			}
			return r.StatusCode() < http.StatusOK || r.StatusCode() >= http.StatusMultipleChoices
		})
		return nil
	}
}

// WithTransport replaces the client's round tripper.
func WithTransport(rt http.RoundTripper) Opt {
	return func(c *resty.Client) error {
		if rt != nil {
			c.SetTransport(rt)
		}
		return nil
	}
}
