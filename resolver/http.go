// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sitesrj/sitesrj/utils/httputils"
	"golang.org/x/time/rate"
)

// ClientOptions configures the HTTP client shared by the providers.
type ClientOptions struct {
	// Timeout bounds each request
	Timeout time.Duration

	// UserAgent is the User-Agent header to use in HTTP requests
	UserAgent string

	// RequestsPerSecond caps outgoing requests, zero disables the limit
	RequestsPerSecond float64

	// Trace receives one line per request when set
	Trace io.Writer
}

// NewHTTPClient builds the client used by the providers.
func NewHTTPClient(options ClientOptions) *http.Client {
	if options.Timeout <= 0 {
		options.Timeout = 10 * time.Second
	}

	userAgent := "sitesrj/unknown"
	if options.UserAgent != "" {
		userAgent = options.UserAgent
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: options.Timeout,
	}

	var rt http.RoundTripper = &httputils.LoggingRoundTripper{
		Writer:    options.Trace,
		Transport: transport,
	}

	if options.RequestsPerSecond > 0 {
		rt = &httputils.RateLimitedRoundTripper{
			Limiter:   rate.NewLimiter(rate.Limit(options.RequestsPerSecond), 1),
			Transport: rt,
		}
	}

	return &http.Client{
		Timeout: options.Timeout,
		Transport: &httputils.AppendRequestHeadersRoundTripper{
			Headers: map[string]string{
				"User-Agent": userAgent,
				"Accept":     "application/json",
			},
			Transport: rt,
		},
	}
}

func getJSON(ctx context.Context, client *http.Client, provider, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &Error{Reason: ReasonInvalidRequest, Provider: provider, Message: "building request", Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		// Google keys travel in the query string.
		var uErr *url.Error
		if errors.As(err, &uErr) {
			uErr.URL = httputils.RedactURL(req.URL)
		}

		return transportError(provider, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ClassifyHTTPStatus(provider, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Reason: ReasonUnavailable, Provider: provider, Message: "decoding response", Err: err}
	}

	return nil
}
