// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	GeocoderGoogle    = "google"
	GeocoderNominatim = "nominatim"

	MatrixGoogle = "google"
	MatrixOSRM   = "osrm"
	MatrixNone   = "none"
)

// Config holds environment-driven settings.
type Config struct {
	File        string
	SitesSheet  string
	AccessSheet string
	Addr        string

	GoogleAPIKey   string
	GoogleProject  string
	KeyDisplayName string

	Geocoder     string
	TravelMatrix string
	OSRMURL      string
	NominatimURL string

	ResolverTimeout   time.Duration
	CacheTTL          time.Duration
	CacheSize         int
	MatrixMaxAttempts int
	MatrixBaseDelay   time.Duration

	// HTTPTrace logs every outgoing resolver request
	HTTPTrace bool
}

// Default returns the settings used when nothing is set.
func Default() Config {
	return Config{
		File:              "enderecos.xlsx",
		SitesSheet:        "dados",
		AccessSheet:       "acessos",
		Addr:              "localhost:8080",
		Geocoder:          GeocoderGoogle,
		TravelMatrix:      MatrixGoogle,
		ResolverTimeout:   10 * time.Second,
		CacheTTL:          time.Hour,
		CacheSize:         1024,
		MatrixMaxAttempts: 3,
		MatrixBaseDelay:   250 * time.Millisecond,
	}
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Default()

	setString(&cfg.File, "SITES_FILE")
	setString(&cfg.SitesSheet, "SITES_SHEET")
	setString(&cfg.AccessSheet, "ACCESS_SHEET")
	setString(&cfg.Addr, "SITES_ADDR")
	setString(&cfg.GoogleAPIKey, "GOOGLE_MAPS_API_KEY")
	setString(&cfg.GoogleProject, "GOOGLE_CLOUD_PROJECT")
	setString(&cfg.KeyDisplayName, "MAPS_KEY_NAME")
	setString(&cfg.OSRMURL, "OSRM_URL")
	setString(&cfg.NominatimURL, "NOMINATIM_URL")

	if v := os.Getenv("GEOCODER"); v != "" {
		cfg.Geocoder = strings.ToLower(strings.TrimSpace(v))
	}

	switch cfg.Geocoder {
	case GeocoderGoogle, GeocoderNominatim:
	default:
		return cfg, fmt.Errorf("invalid GEOCODER: %s (want google or nominatim)", cfg.Geocoder)
	}

	if v := os.Getenv("TRAVEL_MATRIX"); v != "" {
		cfg.TravelMatrix = strings.ToLower(strings.TrimSpace(v))
	}

	switch cfg.TravelMatrix {
	case MatrixGoogle, MatrixOSRM, MatrixNone:
	default:
		return cfg, fmt.Errorf("invalid TRAVEL_MATRIX: %s (want google, osrm or none)", cfg.TravelMatrix)
	}

	for _, d := range []struct {
		dst *time.Duration
		key string
	}{
		{&cfg.ResolverTimeout, "RESOLVER_TIMEOUT"},
		{&cfg.CacheTTL, "CACHE_TTL"},
		{&cfg.MatrixBaseDelay, "MATRIX_BASE_DELAY"},
	} {
		if err := setDuration(d.dst, d.key); err != nil {
			return cfg, err
		}
	}

	if err := setPositiveInt(&cfg.CacheSize, "CACHE_SIZE"); err != nil {
		return cfg, err
	}

	if err := setPositiveInt(&cfg.MatrixMaxAttempts, "MATRIX_MAX_ATTEMPTS"); err != nil {
		return cfg, err
	}

	if v := os.Getenv("HTTP_TRACE"); v != "" {
		trace, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid HTTP_TRACE: %s", v)
		}

		cfg.HTTPTrace = trace
	}

	return cfg, nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fmt.Errorf("invalid %s: %s", key, v)
	}

	*dst = d

	return nil
}

func setPositiveInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid %s: %s", key, v)
	}

	*dst = n

	return nil
}
