// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Reason classifies why a lookup failed.
type Reason int

const (
	// ReasonUnknown unclassified failure.
	ReasonUnknown Reason = iota
	// ReasonNotFound the provider had no answer for the input.
	ReasonNotFound
	// ReasonRateLimit too many requests.
	ReasonRateLimit
	// ReasonQuotaExceeded quota exhausted or access denied.
	ReasonQuotaExceeded
	// ReasonTimeout the request did not complete in time.
	ReasonTimeout
	// ReasonInvalidRequest the provider rejected the request.
	ReasonInvalidRequest
	// ReasonNetwork connection level failure.
	ReasonNetwork
	// ReasonUnavailable the provider is down or answered garbage.
	ReasonUnavailable
)

var reasonNames = map[Reason]string{
	ReasonUnknown:        "unknown",
	ReasonNotFound:       "not_found",
	ReasonRateLimit:      "rate_limit",
	ReasonQuotaExceeded:  "quota_exceeded",
	ReasonTimeout:        "timeout",
	ReasonInvalidRequest: "invalid_request",
	ReasonNetwork:        "network",
	ReasonUnavailable:    "unavailable",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}

	return fmt.Sprintf("reason(%d)", int(r))
}

// Error is the typed failure returned by every resolver.
type Error struct {
	Reason   Reason
	Provider string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNotFound is returned when a lookup has no result.
var ErrNotFound = &Error{Reason: ReasonNotFound, Message: "not found"}

// Is makes errors.Is(err, ErrNotFound) match any not found Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t == ErrNotFound && e.Reason == ReasonNotFound
}

// ReasonOf extracts the failure reason from err.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonUnknown
	}

	var rErr *Error
	if errors.As(err, &rErr) {
		return rErr.Reason
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimeout
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "over_query_limit"), strings.Contains(errStr, "quota exceeded"):
		return ReasonQuotaExceeded
	case strings.Contains(errStr, "too many requests"), strings.Contains(errStr, "rate limit"):
		return ReasonRateLimit
	case strings.Contains(errStr, "timeout"), strings.Contains(errStr, "deadline exceeded"):
		return ReasonTimeout
	}

	return ReasonUnknown
}

// IsNotFound reports whether err means the input had no result.
func IsNotFound(err error) bool {
	return ReasonOf(err) == ReasonNotFound
}

// IsTransient reports whether a retry may succeed.
func IsTransient(err error) bool {
	switch ReasonOf(err) {
	case ReasonRateLimit, ReasonTimeout, ReasonNetwork, ReasonUnavailable:
		return true
	default:
		return false
	}
}

// ClassifyHTTPStatus maps an unexpected HTTP status into an Error.
func ClassifyHTTPStatus(provider string, statusCode int) *Error {
	switch statusCode {
	case http.StatusTooManyRequests:
		return &Error{Reason: ReasonRateLimit, Provider: provider, Message: "rate limit reached"}
	case http.StatusForbidden, http.StatusUnauthorized:
		return &Error{Reason: ReasonQuotaExceeded, Provider: provider, Message: "quota exceeded or access denied"}
	case http.StatusBadRequest:
		return &Error{Reason: ReasonInvalidRequest, Provider: provider, Message: "invalid request"}
	case http.StatusNotFound:
		return &Error{Reason: ReasonNotFound, Provider: provider, Message: "not found"}
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout, http.StatusInternalServerError:
		return &Error{
			Reason:   ReasonUnavailable,
			Provider: provider,
			Message:  fmt.Sprintf("service unavailable (status %d)", statusCode),
		}
	default:
		return &Error{Reason: ReasonUnknown, Provider: provider, Message: fmt.Sprintf("HTTP error %d", statusCode)}
	}
}

// ClassifyStatus maps a Google Maps Platform response status into an Error.
// It returns nil for "OK".
func ClassifyStatus(provider, status, message string) *Error {
	var reason Reason

	switch status {
	case "OK":
		return nil
	case "ZERO_RESULTS", "NOT_FOUND":
		reason = ReasonNotFound
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT", "REQUEST_DENIED":
		reason = ReasonQuotaExceeded
	case "INVALID_REQUEST", "MAX_ELEMENTS_EXCEEDED", "MAX_DIMENSIONS_EXCEEDED", "MAX_ROUTE_LENGTH_EXCEEDED":
		reason = ReasonInvalidRequest
	case "UNKNOWN_ERROR":
		reason = ReasonUnavailable
	default:
		reason = ReasonUnknown
	}

	msg := "status " + status
	if message != "" {
		msg += " (" + message + ")"
	}

	return &Error{Reason: reason, Provider: provider, Message: msg}
}

// transportError wraps a failure returned by http.Client.Do.
func transportError(provider string, err error) *Error {
	reason := ReasonNetwork
	if ReasonOf(err) == ReasonTimeout {
		reason = ReasonTimeout
	}

	return &Error{Reason: reason, Provider: provider, Message: "request failed", Err: err}
}
