// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

// Package sites holds the tower site table: loading it from a workbook,
// looking sites up by code and ranking them by distance to a location.
package sites

import (
	"strings"

	"github.com/sitesrj/sitesrj/spatial"
	"github.com/sitesrj/sitesrj/utils/textutils"
)

// Site is one tower record.
type Site struct {
	Code    string         `json:"code"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Point   *spatial.Point `json:"point,omitempty"` // nil when a coordinate is missing
	Owner   string         `json:"owner,omitempty"`
}

// Access authorizes a technician on a site.
type Access struct {
	Code       string
	Technician string
	Status     string
}

// Active reports whether the access status is "ok", ignoring case and accents.
func (a Access) Active() bool {
	return textutils.LowerASCIIFolding(a.Status) == "ok"
}

// Dataset is everything read from one workbook.
type Dataset struct {
	Sites []*Site

	// Access is nil when technician data is unavailable
	Access []Access
}

func codeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
