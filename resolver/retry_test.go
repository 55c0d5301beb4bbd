// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sitesrj/sitesrj/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicyDelay(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: 350 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, p.Delay(0))
	assert.Equal(t, 200*time.Millisecond, p.Delay(1))
	assert.Equal(t, 350*time.Millisecond, p.Delay(2))
	assert.Equal(t, 350*time.Millisecond, p.Delay(40))
	assert.Equal(t, time.Duration(0), RetryPolicy{}.Delay(1))
}

func TestRetryPolicyDo(t *testing.T) {
	transient := &Error{Reason: ReasonUnavailable, Message: "down"}
	permanent := &Error{Reason: ReasonQuotaExceeded, Message: "denied"}

	tests := []struct {
		name      string
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{"success first try", nil, 1, nil},
		{"recovers after transient", []error{transient}, 2, nil},
		{"gives up after max attempts", []error{transient, transient, transient, transient}, 3, transient},
		{"permanent is not retried", []error{permanent}, 1, permanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
			calls := 0

			err := p.Do(context.Background(), "test", func(context.Context) error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}

				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRetryPolicyDoStopsOnCancel(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := p.Do(ctx, "test", func(context.Context) error {
		calls++
		cancel()

		return &Error{Reason: ReasonTimeout}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicyDoSingleAttempt(t *testing.T) {
	calls := 0

	err := RetryPolicy{}.Do(context.Background(), "test", func(context.Context) error {
		calls++

		return &Error{Reason: ReasonNetwork}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

type fakeMatrix struct {
	calls  int
	errs   []error
	result []*TravelEstimate
	purged bool
}

func (f *fakeMatrix) Matrix(_ context.Context, _ spatial.Point, dests []spatial.Point) ([]*TravelEstimate, error) {
	f.calls++
	if f.calls <= len(f.errs) {
		return nil, f.errs[f.calls-1]
	}

	if f.result != nil {
		return f.result, nil
	}

	return make([]*TravelEstimate, len(dests)), nil
}

func (f *fakeMatrix) Purge() {
	f.purged = true
}

func TestRetrying(t *testing.T) {
	want := []*TravelEstimate{{DistanceKm: 3, Duration: time.Minute}}
	inner := &fakeMatrix{
		errs:   []error{&Error{Reason: ReasonRateLimit}},
		result: want,
	}

	m := Retrying(inner, RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond})

	got, err := m.Matrix(context.Background(), spatial.Point{}, []spatial.Point{{Lat: 1, Lng: 1}})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 2, inner.calls)

	p, ok := m.(Purger)
	require.True(t, ok)
	p.Purge()
	assert.True(t, inner.purged)
}

func TestRetryingReturnsLastError(t *testing.T) {
	boom := errors.New("boom")
	inner := &fakeMatrix{errs: []error{boom}}

	_, err := Retrying(inner, DefaultRetryPolicy).Matrix(context.Background(), spatial.Point{}, []spatial.Point{{}})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, inner.calls)
}
