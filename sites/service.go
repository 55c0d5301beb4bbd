// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import (
	"context"
	"fmt"
	"strings"

	"github.com/sitesrj/sitesrj/city"
	"github.com/sitesrj/sitesrj/resolver"
)

// SiteView is a site prepared for display.
type SiteView struct {
	*Site

	City        string   `json:"city,omitempty"`
	Technicians []string `json:"technicians,omitempty"`
	MapsURL     string   `json:"maps_url,omitempty"`
}

// NearestView is a ranked site prepared for display.
type NearestView struct {
	SiteView

	DistanceKm float64                  `json:"distance_km"`
	Travel     *resolver.TravelEstimate `json:"travel,omitempty"`
}

// NearestResult is the answer to an address search.
type NearestResult struct {
	Query    string                   `json:"query"`
	Location resolver.GeocodingResult `json:"location"`
	Sites    []NearestView            `json:"sites"`
}

// Service answers code and address searches over a Repository.
type Service struct {
	repo      *Repository
	extractor *city.Extractor
	geocoder  resolver.Geocoder
	matrix    resolver.TravelMatrix
	nearest   int
}

// NewService creates a service. geocoder may be nil, which disables address
// search, and matrix may be nil, which disables travel estimates.
func NewService(repo *Repository, geocoder resolver.Geocoder, matrix resolver.TravelMatrix) *Service {
	return &Service{
		repo:      repo,
		extractor: city.Default(),
		geocoder:  geocoder,
		matrix:    matrix,
		nearest:   DefaultNearest,
	}
}

// Repository returns the underlying repository.
func (s *Service) Repository() *Repository {
	return s.repo
}

func (s *Service) view(site *Site) SiteView {
	v := SiteView{Site: site}

	if c, ok := s.extractor.Extract(site.Name, site.Address); ok {
		v.City = c
	}

	v.Technicians = s.repo.TechniciansFor(site.Code)

	if site.Point != nil {
		v.MapsURL = site.Point.MapsURL()
	}

	return v
}

// SearchByCode returns a view of every site with the given code.
func (s *Service) SearchByCode(code string) []SiteView {
	found := s.repo.FindByCode(code)
	views := make([]SiteView, len(found))

	for i, site := range found {
		views[i] = s.view(site)
	}

	return views
}

// SearchByAddress geocodes address and returns the nearest sites to it.
// Resolver failures are returned wrapped, so resolver.IsNotFound still
// applies to them.
func (s *Service) SearchByAddress(ctx context.Context, address string) (*NearestResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	if s.geocoder == nil {
		return nil, ErrNoGeocoder
	}

	loc, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", address, err)
	}

	ranked := Rank(loc.Point, s.repo.Sites(), s.nearest)
	Enrich(ctx, s.matrix, loc.Point, ranked)

	result := &NearestResult{
		Query:    address,
		Location: *loc,
		Sites:    make([]NearestView, len(ranked)),
	}

	for i, r := range ranked {
		result.Sites[i] = NearestView{
			SiteView:   s.view(r.Site),
			DistanceKm: r.DistanceKm,
			Travel:     r.Travel,
		}
	}

	return result, nil
}

// Reload drops resolver caches and re-reads the repository source.
func (s *Service) Reload() error {
	for _, r := range []any{s.geocoder, s.matrix} {
		if p, ok := r.(resolver.Purger); ok {
			p.Purge()
		}
	}

	return s.repo.Reload()
}
