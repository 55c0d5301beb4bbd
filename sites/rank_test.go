// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sitesrj/sitesrj/resolver"
	"github.com/sitesrj/sitesrj/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func site(code string, lat, lng string) *Site {
	return &Site{Code: code, Point: spatial.ParsePoint(lat, lng)}
}

func codes(ranked []Ranked) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Site.Code
	}

	return out
}

func TestRankNearest(t *testing.T) {
	sites := []*Site{
		site("FAR", "-21.00", "-41.00"),
		site("ERB1", "-22,90", "-43,20"),
		site("MID", "-22.80", "-43.00"),
	}

	got := Rank(spatial.Point{Lat: -22.91, Lng: -43.21}, sites, DefaultNearest)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"ERB1", "MID", "FAR"}, codes(got))
	assert.InDelta(t, 1.512, got[0].DistanceKm, 0.001)
	assert.Nil(t, got[0].Travel)
}

func TestRankSkipsMissingCoordinates(t *testing.T) {
	target := spatial.Point{Lat: -22.91, Lng: -43.21}
	sites := []*Site{
		{Code: "CLOSEST", Point: spatial.ParsePoint("-22.91", "")},
		site("A", "-22.95", "-43.25"),
		nil,
		site("B", "-23.50", "-44.00"),
	}

	got := Rank(target, sites, DefaultNearest)
	assert.Equal(t, []string{"A", "B"}, codes(got))
}

func TestRankSelfIsFirst(t *testing.T) {
	sites := []*Site{
		site("OTHER", "-22.905", "-43.205"),
		site("SELF", "-22.91", "-43.21"),
	}

	got := Rank(spatial.Point{Lat: -22.91, Lng: -43.21}, sites, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "SELF", got[0].Site.Code)
	assert.Zero(t, got[0].DistanceKm)
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	sites := []*Site{
		site("T1", "-22.00", "-43.00"),
		site("T2", "-22.00", "-43.00"),
		site("T3", "-22.00", "-43.00"),
		site("T4", "-22.00", "-43.00"),
	}

	got := Rank(spatial.Point{Lat: -22.5, Lng: -43.5}, sites, 3)
	assert.Equal(t, []string{"T1", "T2", "T3"}, codes(got))

	assert.Len(t, Rank(spatial.Point{}, sites, 0), 4)
	assert.Empty(t, Rank(spatial.Point{}, nil, 3))
}

type stubMatrix struct {
	estimates []*resolver.TravelEstimate
	err       error
	origin    spatial.Point
	dests     []spatial.Point
	purged    bool
}

func (m *stubMatrix) Matrix(_ context.Context, origin spatial.Point, dests []spatial.Point) ([]*resolver.TravelEstimate, error) {
	m.origin, m.dests = origin, dests

	return m.estimates, m.err
}

func (m *stubMatrix) Purge() {
	m.purged = true
}

func TestEnrich(t *testing.T) {
	target := spatial.Point{Lat: -22.91, Lng: -43.21}
	sites := []*Site{site("A", "-22.90", "-43.20"), site("B", "-22.80", "-43.00")}

	m := &stubMatrix{estimates: []*resolver.TravelEstimate{
		{DistanceKm: 2.1, Duration: 5 * time.Minute},
		nil,
	}}

	ranked := Rank(target, sites, 2)
	Enrich(context.Background(), m, target, ranked)

	assert.Equal(t, target, m.origin)
	assert.Equal(t, []spatial.Point{*sites[0].Point, *sites[1].Point}, m.dests)
	assert.Equal(t, &resolver.TravelEstimate{DistanceKm: 2.1, Duration: 5 * time.Minute}, ranked[0].Travel)
	assert.Nil(t, ranked[1].Travel)
}

func TestEnrichSoftFails(t *testing.T) {
	target := spatial.Point{Lat: -22.91, Lng: -43.21}
	sites := []*Site{site("A", "-22.90", "-43.20"), site("B", "-22.80", "-43.00")}

	tests := []struct {
		name   string
		matrix resolver.TravelMatrix
	}{
		{"no matrix", nil},
		{"error", &stubMatrix{err: errors.New("unavailable")}},
		{"length mismatch", &stubMatrix{estimates: []*resolver.TravelEstimate{{DistanceKm: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(target, sites, 2)
			Enrich(context.Background(), tt.matrix, target, ranked)

			for _, r := range ranked {
				assert.Nil(t, r.Travel)
			}
		})
	}
}
