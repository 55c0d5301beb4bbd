// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolver holds the external lookups the site search depends on:
// turning an address into a coordinate and measuring travel from one origin
// to several destinations.
package resolver

import (
	"context"
	"time"

	"github.com/sitesrj/sitesrj/spatial"
)

// GeocodingResult represents a geocoding result from any provider.
type GeocodingResult struct {
	Point       spatial.Point `json:"point"`
	Provider    string        `json:"provider"`
	DisplayName string        `json:"display_name,omitempty"`
}

// Geocoder resolves a free-text address into a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*GeocodingResult, error)
}

// TravelEstimate is the road distance and duration to one destination.
type TravelEstimate struct {
	DistanceKm float64       `json:"distance_km"`
	Duration   time.Duration `json:"duration"`
}

// TravelMatrix measures travel from one origin to an ordered list of
// destinations. The returned slice is index-aligned with destinations; a nil
// entry means that destination could not be routed.
type TravelMatrix interface {
	Matrix(ctx context.Context, origin spatial.Point, destinations []spatial.Point) ([]*TravelEstimate, error)
}

// Purger is implemented by resolvers that keep derived state.
type Purger interface {
	Purge()
}
