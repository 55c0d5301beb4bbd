// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

// Package spatial holds coordinates and the distance math over them.
package spatial

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/uber/h3-go/v4"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0088

// Point represents a geographical point with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

// Valid reports whether the point lies within latitude/longitude bounds.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// HaversineDistance calculates the distance between two points on Earth in kilometers.
func (p Point) HaversineDistance(other Point) float64 {
	lat1 := p.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - p.Lat) * math.Pi / 180
	dLng := (other.Lng - p.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// MapsURL returns a Google Maps search link centered on the point.
func (p Point) MapsURL() string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", strconv.FormatFloat(p.Lat, 'f', -1, 64)+","+strconv.FormatFloat(p.Lng, 'f', -1, 64))

	return "https://www.google.com/maps/search/?" + q.Encode()
}

// Cell returns the H3 cell containing the point at the given resolution.
func (p Point) Cell(res int) (h3.Cell, error) {
	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), res)
	if err != nil {
		return 0, fmt.Errorf("error converting to h3 cell at res %d: %w", res, err)
	}

	return cell, nil
}

// ParseCoordinate parses a coordinate written with either a decimal point or
// a decimal comma ("-22,90"). Empty or invalid input reports false.
func ParseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// ParsePoint builds a point from a latitude and longitude string pair. It
// returns nil when either value is missing or out of range.
func ParsePoint(lat, lng string) *Point {
	la, ok := ParseCoordinate(lat)
	if !ok {
		return nil
	}

	lo, ok := ParseCoordinate(lng)
	if !ok {
		return nil
	}

	p := &Point{Lat: la, Lng: lo}
	if !p.Valid() {
		return nil
	}

	return p
}
