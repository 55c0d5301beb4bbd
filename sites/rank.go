// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import (
	"cmp"
	"context"
	"log"
	"slices"

	"github.com/sitesrj/sitesrj/resolver"
	"github.com/sitesrj/sitesrj/spatial"
)

// DefaultNearest is how many sites an address search returns.
const DefaultNearest = 3

// Ranked is a site with its distance to a target.
type Ranked struct {
	Site       *Site
	DistanceKm float64

	// Travel is nil when no travel estimate is available
	Travel *resolver.TravelEstimate
}

// Rank orders the sites that have a coordinate by great-circle distance to
// target and returns the k closest. Ties keep input order. k <= 0 returns all.
func Rank(target spatial.Point, sites []*Site, k int) []Ranked {
	ranked := make([]Ranked, 0, len(sites))

	for _, s := range sites {
		if s == nil || s.Point == nil {
			continue
		}

		ranked = append(ranked, Ranked{Site: s, DistanceKm: target.HaversineDistance(*s.Point)})
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}

	return ranked
}

// Enrich fills Travel for each ranked site from matrix, in order. Failures are
// logged and leave Travel nil.
func Enrich(ctx context.Context, matrix resolver.TravelMatrix, target spatial.Point, ranked []Ranked) {
	if matrix == nil || len(ranked) == 0 {
		return
	}

	dests := make([]spatial.Point, len(ranked))
	for i, r := range ranked {
		dests[i] = *r.Site.Point
	}

	estimates, err := matrix.Matrix(ctx, target, dests)
	if err != nil {
		log.Printf("⚠️  Travel estimates unavailable: %v", err)

		return
	}

	if len(estimates) != len(ranked) {
		log.Printf("⚠️  Travel matrix returned %d estimates for %d sites, ignoring", len(estimates), len(ranked))

		return
	}

	for i := range ranked {
		ranked[i].Travel = estimates[i]
	}
}
