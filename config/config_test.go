// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"SITES_FILE", "SITES_SHEET", "ACCESS_SHEET", "SITES_ADDR",
	"GOOGLE_MAPS_API_KEY", "GOOGLE_CLOUD_PROJECT", "MAPS_KEY_NAME",
	"GEOCODER", "TRAVEL_MATRIX", "OSRM_URL", "NOMINATIM_URL",
	"RESOLVER_TIMEOUT", "CACHE_TTL", "CACHE_SIZE",
	"MATRIX_MAX_ATTEMPTS", "MATRIX_BASE_DELAY", "HTTP_TRACE",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	// Load looks for .env in the working directory.
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)

	t.Setenv("SITES_FILE", "/data/sites.xlsx")
	t.Setenv("SITES_ADDR", ":9090")
	t.Setenv("GEOCODER", " Nominatim ")
	t.Setenv("TRAVEL_MATRIX", "osrm")
	t.Setenv("OSRM_URL", "http://osrm:5000")
	t.Setenv("RESOLVER_TIMEOUT", "3s")
	t.Setenv("CACHE_SIZE", "16")
	t.Setenv("MATRIX_MAX_ATTEMPTS", "5")
	t.Setenv("HTTP_TRACE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/sites.xlsx", cfg.File)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, GeocoderNominatim, cfg.Geocoder)
	assert.Equal(t, MatrixOSRM, cfg.TravelMatrix)
	assert.Equal(t, "http://osrm:5000", cfg.OSRMURL)
	assert.Equal(t, 3*time.Second, cfg.ResolverTimeout)
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Equal(t, 5, cfg.MatrixMaxAttempts)
	assert.True(t, cfg.HTTPTrace)
	assert.Equal(t, "dados", cfg.SitesSheet)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("SITES_SHEET=torres\nCACHE_TTL=5m\n"), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("SITES_SHEET")
		os.Unsetenv("CACHE_TTL")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "torres", cfg.SitesSheet)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"GEOCODER", "bing"},
		{"TRAVEL_MATRIX", "walk"},
		{"RESOLVER_TIMEOUT", "soon"},
		{"CACHE_TTL", "-1m"},
		{"CACHE_SIZE", "0"},
		{"MATRIX_MAX_ATTEMPTS", "many"},
		{"HTTP_TRACE", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
