// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Reason
	}{
		{"nil", nil, ReasonUnknown},
		{"typed", &Error{Reason: ReasonRateLimit}, ReasonRateLimit},
		{"wrapped typed", fmt.Errorf("geocoding: %w", &Error{Reason: ReasonNotFound}), ReasonNotFound},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), ReasonTimeout},
		{"message over_query_limit", errors.New("google maps status: OVER_QUERY_LIMIT"), ReasonQuotaExceeded},
		{"message too many requests", errors.New("too many requests"), ReasonRateLimit},
		{"message timeout", errors.New("i/o timeout"), ReasonTimeout},
		{"unrelated", errors.New("some other error"), ReasonUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReasonOf(tt.err))
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		reason Reason
		want   bool
	}{
		{ReasonUnknown, false},
		{ReasonNotFound, false},
		{ReasonRateLimit, true},
		{ReasonQuotaExceeded, false},
		{ReasonTimeout, true},
		{ReasonInvalidRequest, false},
		{ReasonNetwork, true},
		{ReasonUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(&Error{Reason: tt.reason}))
		})
	}
}

func TestErrNotFound(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &Error{Reason: ReasonNotFound, Provider: "osrm", Message: "NoRoute"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
	assert.NotErrorIs(t, &Error{Reason: ReasonTimeout}, ErrNotFound)
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Reason: ReasonNetwork, Provider: "osrm", Message: "request failed", Err: errors.New("connection refused")}
	assert.Equal(t, "osrm: request failed: connection refused", err.Error())
	assert.Equal(t, "not found", ErrNotFound.Error())
}

func TestClassifyHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Reason
	}{
		{http.StatusTooManyRequests, ReasonRateLimit},
		{http.StatusForbidden, ReasonQuotaExceeded},
		{http.StatusBadRequest, ReasonInvalidRequest},
		{http.StatusNotFound, ReasonNotFound},
		{http.StatusBadGateway, ReasonUnavailable},
		{http.StatusServiceUnavailable, ReasonUnavailable},
		{http.StatusTeapot, ReasonUnknown},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := ClassifyHTTPStatus("test", tt.status)
			assert.Equal(t, tt.want, err.Reason)
			assert.Equal(t, "test", err.Provider)
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	assert.Nil(t, ClassifyStatus("google_maps", "OK", ""))

	tests := []struct {
		status string
		want   Reason
	}{
		{"ZERO_RESULTS", ReasonNotFound},
		{"OVER_QUERY_LIMIT", ReasonQuotaExceeded},
		{"REQUEST_DENIED", ReasonQuotaExceeded},
		{"INVALID_REQUEST", ReasonInvalidRequest},
		{"MAX_ELEMENTS_EXCEEDED", ReasonInvalidRequest},
		{"UNKNOWN_ERROR", ReasonUnavailable},
		{"SOMETHING_NEW", ReasonUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			err := ClassifyStatus("google_maps", tt.status, "details")
			assert.Equal(t, tt.want, err.Reason)
			assert.Contains(t, err.Error(), tt.status)
			assert.Contains(t, err.Error(), "details")
		})
	}
}
