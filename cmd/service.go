// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/sitesrj/sitesrj/config"
	"github.com/sitesrj/sitesrj/resolver"
	"github.com/sitesrj/sitesrj/sites"
)

func userAgent() string {
	return fmt.Sprintf("sitesrj/%s", Version)
}

func httpClient(c config.Config, rps float64) *http.Client {
	options := resolver.ClientOptions{
		Timeout:           c.ResolverTimeout,
		UserAgent:         userAgent(),
		RequestsPerSecond: rps,
	}

	if c.HTTPTrace {
		options.Trace = os.Stderr
	}

	return resolver.NewHTTPClient(options)
}

// googleAPIKey returns the configured key or, failing that, the one found via
// Application Default Credentials. It returns "" when neither works.
func googleAPIKey(ctx context.Context, c config.Config) string {
	if c.GoogleAPIKey != "" {
		return c.GoogleAPIKey
	}

	log.Println("GOOGLE_MAPS_API_KEY is not set. Attempting to retrieve via ADC...")

	key, err := resolver.APIKeyFromADC(ctx, c.GoogleProject, c.KeyDisplayName)
	if err != nil {
		log.Printf("Failed to retrieve API key via ADC: %v", err)

		return ""
	}

	log.Println("✅ Successfully retrieved Google Maps API Key via ADC")

	return key
}

// newResolvers builds the geocoder and travel matrix chosen by c. Without a
// Google key the keyless providers are used instead.
func newResolvers(ctx context.Context, c config.Config) (resolver.Geocoder, resolver.TravelMatrix) {
	var key string
	if c.Geocoder == config.GeocoderGoogle || c.TravelMatrix == config.MatrixGoogle {
		key = googleAPIKey(ctx, c)
	}

	cache := resolver.CacheOptions{Size: c.CacheSize, TTL: c.CacheTTL}

	var geocoder resolver.Geocoder

	if c.Geocoder == config.GeocoderGoogle && key != "" {
		log.Println("📍 Geocoding: Google Maps")
		geocoder = resolver.NewGoogleMapsGeocoder(key, httpClient(c, 0))
	} else {
		if c.Geocoder == config.GeocoderGoogle {
			log.Println("⚠️  No Google Maps key, falling back to Nominatim")
		}

		log.Println("📍 Geocoding: Nominatim")
		geocoder = resolver.NewNominatimGeocoder(c.NominatimURL, httpClient(c, 1))
	}

	var matrix resolver.TravelMatrix

	switch {
	case c.TravelMatrix == config.MatrixNone:
		log.Println("🚗 Travel estimates: disabled")

		return resolver.NewCachedGeocoder(geocoder, cache), nil
	case c.TravelMatrix == config.MatrixGoogle && key != "":
		log.Println("🚗 Travel estimates: Google Distance Matrix")
		matrix = resolver.NewGoogleDistanceMatrix(key, httpClient(c, 0))
	default:
		if c.TravelMatrix == config.MatrixGoogle {
			log.Println("⚠️  No Google Maps key, falling back to OSRM")
		}

		log.Println("🚗 Travel estimates: OSRM")
		matrix = resolver.NewOSRMTable(c.OSRMURL, httpClient(c, 0))
	}

	policy := resolver.DefaultRetryPolicy
	policy.MaxAttempts = c.MatrixMaxAttempts
	policy.BaseDelay = c.MatrixBaseDelay

	return resolver.NewCachedGeocoder(geocoder, cache),
		resolver.NewCachedTravelMatrix(resolver.Retrying(matrix, policy), cache)
}

// newService loads the workbook and wires the resolvers.
func newService(ctx context.Context) (*sites.Service, error) {
	repo, err := sites.NewRepository(sites.NewWorkbookSource(cfg.File, cfg.SitesSheet, cfg.AccessSheet))
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %d sites from %s", len(repo.Sites()), cfg.File)

	geocoder, matrix := newResolvers(ctx, cfg)

	return sites.NewService(repo, geocoder, matrix), nil
}

// newCodeService loads the workbook without any resolver.
func newCodeService() (*sites.Service, error) {
	repo, err := sites.NewRepository(sites.NewWorkbookSource(cfg.File, cfg.SitesSheet, cfg.AccessSheet))
	if err != nil {
		return nil, err
	}

	return sites.NewService(repo, nil, nil), nil
}
