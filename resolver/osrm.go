// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sitesrj/sitesrj/spatial"
)

const (
	osrmProvider = "osrm"
	// OSRMURL is the public OSRM demo server.
	OSRMURL = "https://router.project-osrm.org"
)

// OSRMTable uses the table service of an OSRM server.
type OSRMTable struct {
	baseURL    string
	profile    string
	httpClient *http.Client
}

// NewOSRMTable creates a travel matrix backed by an OSRM server.
func NewOSRMTable(baseURL string, client *http.Client) *OSRMTable {
	if baseURL == "" {
		baseURL = OSRMURL
	}

	if client == nil {
		client = NewHTTPClient(ClientOptions{})
	}

	return &OSRMTable{
		baseURL:    strings.TrimRight(baseURL, "/"),
		profile:    "driving",
		httpClient: client,
	}
}

type osrmTableResponse struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Durations [][]*float64 `json:"durations"` // seconds
	Distances [][]*float64 `json:"distances"` // meters
}

func lonLat(p spatial.Point) string {
	return strconv.FormatFloat(p.Lng, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lat, 'f', 6, 64)
}

func (o *OSRMTable) Matrix(
	ctx context.Context,
	origin spatial.Point,
	destinations []spatial.Point,
) ([]*TravelEstimate, error) {
	if len(destinations) == 0 {
		return nil, nil
	}

	coords := make([]string, 0, len(destinations)+1)
	coords = append(coords, lonLat(origin))

	for _, d := range destinations {
		coords = append(coords, lonLat(d))
	}

	reqURL := fmt.Sprintf("%s/table/v1/%s/%s?sources=0&annotations=duration,distance",
		o.baseURL, o.profile, strings.Join(coords, ";"))

	var resp osrmTableResponse
	if err := getJSON(ctx, o.httpClient, osrmProvider, reqURL, &resp); err != nil {
		return nil, err
	}

	switch resp.Code {
	case "Ok":
	case "NoTable", "NoRoute", "NoSegment":
		return nil, &Error{Reason: ReasonNotFound, Provider: osrmProvider, Message: resp.Code}
	default:
		return nil, &Error{Reason: ReasonInvalidRequest, Provider: osrmProvider, Message: resp.Code + ": " + resp.Message}
	}

	if len(resp.Durations) != 1 || len(resp.Durations[0]) != len(coords) ||
		len(resp.Distances) != 1 || len(resp.Distances[0]) != len(coords) {
		return nil, &Error{
			Reason:   ReasonUnavailable,
			Provider: osrmProvider,
			Message:  fmt.Sprintf("unexpected table shape for %d destinations", len(destinations)),
		}
	}

	out := make([]*TravelEstimate, len(destinations))

	for i := range destinations {
		dur, dist := resp.Durations[0][i+1], resp.Distances[0][i+1]
		if dur == nil || dist == nil {
			continue
		}

		out[i] = &TravelEstimate{
			DistanceKm: *dist / 1000,
			Duration:   time.Duration(*dur * float64(time.Second)),
		}
	}

	return out, nil
}
