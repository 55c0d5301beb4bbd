// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

// Package httputils provides utility functions for working with HTTP.
package httputils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

/////////////////////////////////////////
/// RountTrippers

// query parameters that carry credentials and must not reach the logs.
var secretParams = []string{"key", "api_key", "token"}

// RedactURL hides credentials carried in the query string.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	c := *u
	q := c.Query()

	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
		}
	}

	c.RawQuery = q.Encode()

	return c.String()
}

// LoggingRoundTripper writes one line per HTTP transaction.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Writer    io.Writer
}

// RoundTrip implements the http.RoundTripper interface.
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Writer == nil {
		return t.Transport.RoundTrip(req)
	}

	start := time.Now()

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		fmt.Fprintf(t.Writer, "> %s %s: %v [%v]\n", req.Method, RedactURL(req.URL), err, time.Since(start))

		return nil, err
	}

	fmt.Fprintf(t.Writer, "> %s %s: %d [%v]\n", req.Method, RedactURL(req.URL), resp.StatusCode, time.Since(start))

	return resp, nil
}

// AppendRequestHeadersRoundTripper adds headers to the request.
type AppendRequestHeadersRoundTripper struct {
	Transport http.RoundTripper
	Headers   map[string]string
}

// RoundTrip implements the http.RoundTripper interface.
func (t *AppendRequestHeadersRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}

	return t.Transport.RoundTrip(req)
}

// RateLimitedRoundTripper waits on a token bucket before each request.
type RateLimitedRoundTripper struct {
	Transport http.RoundTripper
	Limiter   *rate.Limiter
}

// RoundTrip implements the http.RoundTripper interface.
func (t *RateLimitedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	return t.Transport.RoundTrip(req)
}
