// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"log"
	"time"

	"github.com/sitesrj/sitesrj/spatial"
)

// RetryPolicy bounds how often a transient failure is retried.
type RetryPolicy struct {
	// MaxAttempts counts the first call, values below 1 mean a single attempt
	MaxAttempts int

	// BaseDelay is the wait after the first failure, doubled on each retry
	BaseDelay time.Duration

	// MaxDelay caps a single wait, zero means no cap
	MaxDelay time.Duration
}

// DefaultRetryPolicy is used for the travel matrix when nothing is configured.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	BaseDelay:   250 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

// Delay returns the wait before the given retry (0 for the first retry).
func (p RetryPolicy) Delay(retry int) time.Duration {
	if p.BaseDelay <= 0 || retry < 0 {
		return 0
	}

	d := p.BaseDelay << retry
	if d <= 0 || (p.MaxDelay > 0 && d > p.MaxDelay) {
		d = p.MaxDelay
	}

	return d
}

// Do calls fn until it succeeds, fails permanently, or attempts run out.
func (p RetryPolicy) Do(ctx context.Context, name string, fn func(context.Context) error) error {
	attempts := max(p.MaxAttempts, 1)

	var err error

	for attempt := range attempts {
		if err = fn(ctx); err == nil || !IsTransient(err) {
			return err
		}

		if attempt == attempts-1 {
			break
		}

		d := p.Delay(attempt)
		log.Printf("⚠️  %s failed (%v), retrying in %v [%d/%d]", name, err, d, attempt+1, attempts-1)

		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()

			return ctx.Err()
		case <-t.C:
		}
	}

	return err
}

type retryingMatrix struct {
	next   TravelMatrix
	policy RetryPolicy
}

// Retrying wraps a travel matrix so transient failures are retried under policy.
func Retrying(next TravelMatrix, policy RetryPolicy) TravelMatrix {
	return &retryingMatrix{next: next, policy: policy}
}

func (r *retryingMatrix) Matrix(
	ctx context.Context,
	origin spatial.Point,
	destinations []spatial.Point,
) ([]*TravelEstimate, error) {
	var out []*TravelEstimate

	err := r.policy.Do(ctx, "travel matrix", func(ctx context.Context) error {
		var err error
		out, err = r.next.Matrix(ctx, origin, destinations)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Purge forwards to the wrapped matrix.
func (r *retryingMatrix) Purge() {
	if p, ok := r.next.(Purger); ok {
		p.Purge()
	}
}
