// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/sitesrj/sitesrj/spatial"
)

const (
	nominatimProvider = "nominatim"
	// NominatimURL is the public OpenStreetMap instance.
	NominatimURL = "https://nominatim.openstreetmap.org"
)

// NominatimGeocoder geocodes through an OpenStreetMap Nominatim instance. It
// needs no key but the public instance allows one request per second.
type NominatimGeocoder struct {
	baseURL    string
	httpClient *http.Client
}

// NewNominatimGeocoder creates a geocoder for the given instance.
func NewNominatimGeocoder(baseURL string, client *http.Client) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = NominatimURL
	}

	if client == nil {
		client = NewHTTPClient(ClientOptions{RequestsPerSecond: 1})
	}

	return &NominatimGeocoder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (n *NominatimGeocoder) Geocode(ctx context.Context, address string) (*GeocodingResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, &Error{Reason: ReasonInvalidRequest, Provider: nominatimProvider, Message: "empty address"}
	}

	params := url.Values{}
	params.Set("q", address+", Rio de Janeiro, Brasil")
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	params.Set("countrycodes", "br")

	var places []nominatimPlace
	if err := getJSON(ctx, n.httpClient, nominatimProvider, n.baseURL+"/search?"+params.Encode(), &places); err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, &Error{Reason: ReasonNotFound, Provider: nominatimProvider, Message: "no results for " + address}
	}

	p := spatial.ParsePoint(places[0].Lat, places[0].Lon)
	if p == nil {
		return nil, &Error{
			Reason:   ReasonUnavailable,
			Provider: nominatimProvider,
			Message:  "invalid coordinates " + places[0].Lat + "," + places[0].Lon,
		}
	}

	return &GeocodingResult{
		Point:       *p,
		Provider:    nominatimProvider,
		DisplayName: places[0].DisplayName,
	}, nil
}
