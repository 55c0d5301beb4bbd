// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sitesrj/sitesrj/spatial"
)

const (
	googleProvider  = "google_maps"
	googleMapsAPI   = "https://maps.googleapis.com/maps/api"
	googleComponent = "country:BR|administrative_area:RJ"
)

// GoogleMapsGeocoder uses Google Maps Geocoding API.
type GoogleMapsGeocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleMapsGeocoder creates a new Google Maps geocoder.
func NewGoogleMapsGeocoder(apiKey string, client *http.Client) *GoogleMapsGeocoder {
	if client == nil {
		client = NewHTTPClient(ClientOptions{})
	}

	return &GoogleMapsGeocoder{
		apiKey:     apiKey,
		baseURL:    googleMapsAPI,
		httpClient: client,
	}
}

type googleGeocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status       string `json:"status"` // OK, ZERO_RESULTS, etc.
	ErrorMessage string `json:"error_message"`
}

func (g *GoogleMapsGeocoder) Geocode(ctx context.Context, address string) (*GeocodingResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, &Error{Reason: ReasonInvalidRequest, Provider: googleProvider, Message: "empty address"}
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("components", googleComponent)
	params.Set("region", "br")
	params.Set("language", "pt-BR")
	params.Set("key", g.apiKey)

	var resp googleGeocodeResponse
	if err := getJSON(ctx, g.httpClient, googleProvider, g.baseURL+"/geocode/json?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	if err := ClassifyStatus(googleProvider, resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, &Error{Reason: ReasonNotFound, Provider: googleProvider, Message: "no results for " + address}
	}

	result := resp.Results[0]

	return &GeocodingResult{
		Point: spatial.Point{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		},
		Provider:    googleProvider,
		DisplayName: result.FormattedAddress,
	}, nil
}

// GoogleDistanceMatrix uses the Google Distance Matrix API for driving
// distances and durations.
type GoogleDistanceMatrix struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleDistanceMatrix creates a new Distance Matrix client.
func NewGoogleDistanceMatrix(apiKey string, client *http.Client) *GoogleDistanceMatrix {
	if client == nil {
		client = NewHTTPClient(ClientOptions{})
	}

	return &GoogleDistanceMatrix{
		apiKey:     apiKey,
		baseURL:    googleMapsAPI,
		httpClient: client,
	}
}

type googleMatrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

func (m *GoogleDistanceMatrix) Matrix(
	ctx context.Context,
	origin spatial.Point,
	destinations []spatial.Point,
) ([]*TravelEstimate, error) {
	if len(destinations) == 0 {
		return nil, nil
	}

	dests := make([]string, len(destinations))
	for i, d := range destinations {
		dests[i] = d.String()
	}

	params := url.Values{}
	params.Set("origins", origin.String())
	params.Set("destinations", strings.Join(dests, "|"))
	params.Set("mode", "driving")
	params.Set("units", "metric")
	params.Set("key", m.apiKey)

	var resp googleMatrixResponse
	if err := getJSON(ctx, m.httpClient, googleProvider, m.baseURL+"/distancematrix/json?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	if err := ClassifyStatus(googleProvider, resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	if len(resp.Rows) != 1 || len(resp.Rows[0].Elements) != len(destinations) {
		return nil, &Error{
			Reason:   ReasonUnavailable,
			Provider: googleProvider,
			Message:  fmt.Sprintf("unexpected matrix shape for %d destinations", len(destinations)),
		}
	}

	out := make([]*TravelEstimate, len(destinations))

	for i, el := range resp.Rows[0].Elements {
		if el.Status != "OK" {
			continue
		}

		out[i] = &TravelEstimate{
			DistanceKm: el.Distance.Value / 1000,
			Duration:   time.Duration(el.Duration.Value) * time.Second,
		}
	}

	return out, nil
}
