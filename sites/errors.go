// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import "errors"

var (
	ErrEmptySheet        = errors.New("sheet has no rows")
	ErrMissingCodeColumn = errors.New("no site code column (sigla, sigla_da_torre, codigo)")
	ErrEmptyAddress      = errors.New("address is empty")
	ErrNoGeocoder        = errors.New("no geocoder configured")
)
