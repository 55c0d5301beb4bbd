// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"strings"
	"time"

	"github.com/bluele/gcache"
	"github.com/sitesrj/sitesrj/spatial"
	"github.com/sitesrj/sitesrj/utils/textutils"
)

// originCellRes is the H3 resolution used to share travel matrices between
// nearby origins (cells of roughly 25 m).
const originCellRes = 11

// CacheOptions sizes the resolver caches.
type CacheOptions struct {
	Size int
	TTL  time.Duration
}

func (o CacheOptions) build() gcache.Cache {
	size := o.Size
	if size <= 0 {
		size = 1024
	}

	b := gcache.New(size).LRU()
	if o.TTL > 0 {
		b = b.Expiration(o.TTL)
	}

	return b.Build()
}

// CachedGeocoder keeps successful geocoding results.
type CachedGeocoder struct {
	next  Geocoder
	cache gcache.Cache
}

// NewCachedGeocoder wraps next with an LRU cache.
func NewCachedGeocoder(next Geocoder, options CacheOptions) *CachedGeocoder {
	return &CachedGeocoder{next: next, cache: options.build()}
}

func addressKey(address string) string {
	return strings.Join(strings.Fields(textutils.LowerASCIIFolding(address)), " ")
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (*GeocodingResult, error) {
	key := addressKey(address)
	if v, err := c.cache.Get(key); err == nil {
		if r, ok := v.(*GeocodingResult); ok {
			return r, nil
		}
	}

	r, err := c.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	_ = c.cache.Set(key, r)

	return r, nil
}

// Purge drops every cached result.
func (c *CachedGeocoder) Purge() {
	c.cache.Purge()
}

// CachedTravelMatrix keeps successful travel matrices keyed by the origin's
// H3 cell and the exact destinations.
type CachedTravelMatrix struct {
	next  TravelMatrix
	cache gcache.Cache
}

// NewCachedTravelMatrix wraps next with an LRU cache.
func NewCachedTravelMatrix(next TravelMatrix, options CacheOptions) *CachedTravelMatrix {
	return &CachedTravelMatrix{next: next, cache: options.build()}
}

func matrixKey(origin spatial.Point, destinations []spatial.Point) string {
	var sb strings.Builder

	if cell, err := origin.Cell(originCellRes); err == nil {
		sb.WriteString(cell.String())
	} else {
		sb.WriteString(origin.String())
	}

	for _, d := range destinations {
		sb.WriteByte('|')
		sb.WriteString(d.String())
	}

	return sb.String()
}

func (c *CachedTravelMatrix) Matrix(
	ctx context.Context,
	origin spatial.Point,
	destinations []spatial.Point,
) ([]*TravelEstimate, error) {
	key := matrixKey(origin, destinations)
	if v, err := c.cache.Get(key); err == nil {
		if r, ok := v.([]*TravelEstimate); ok {
			return r, nil
		}
	}

	r, err := c.next.Matrix(ctx, origin, destinations)
	if err != nil {
		return nil, err
	}

	_ = c.cache.Set(key, r)

	return r, nil
}

// Purge drops every cached matrix.
func (c *CachedTravelMatrix) Purge() {
	c.cache.Purge()
}
