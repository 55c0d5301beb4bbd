// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import (
	"strings"

	"github.com/sitesrj/sitesrj/spatial"
	"github.com/sitesrj/sitesrj/utils/textutils"
)

type field int

const (
	fieldCode field = iota
	fieldName
	fieldAddress
	fieldLat
	fieldLng
	fieldOwner
	fieldTechnician
	fieldStatus
)

type synonym struct {
	header   string
	field    field
	contains bool
}

// Headers are folded before matching, so accented spellings need no entry.
var siteColumns = []synonym{
	{header: "sigla", field: fieldCode},
	{header: "sigla_da_torre", field: fieldCode},
	{header: "codigo", field: fieldCode},
	{header: "code", field: fieldCode},
	{header: "nome", field: fieldName},
	{header: "nome_da_torre", field: fieldName},
	{header: "endereco", field: fieldAddress},
	{header: "lat", field: fieldLat},
	{header: "latitude", field: fieldLat},
	{header: "lon", field: fieldLng},
	{header: "lng", field: fieldLng},
	{header: "longitude", field: fieldLng},
	{header: "detentora", field: fieldOwner, contains: true},
	{header: "proprietaria", field: fieldOwner, contains: true},
	{header: "operadora", field: fieldOwner, contains: true},
	{header: "responsavel", field: fieldOwner, contains: true},
}

var accessColumns = []synonym{
	{header: "sigla", field: fieldCode},
	{header: "sigla_da_torre", field: fieldCode},
	{header: "site", field: fieldCode},
	{header: "torre", field: fieldCode},
	{header: "tecnico", field: fieldTechnician},
	{header: "nome_tecnico", field: fieldTechnician},
	{header: "colaborador", field: fieldTechnician},
	{header: "status", field: fieldStatus},
}

func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(textutils.LowerASCIIFolding(h)), "_")
}

// resolveColumns maps each field to the index of the first header matching
// one of its synonyms, trying synonyms in order.
func resolveColumns(header []string, synonyms []synonym) map[field]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}

	cols := make(map[field]int)

	for _, s := range synonyms {
		if _, ok := cols[s.field]; ok {
			continue
		}

		for i, h := range normalized {
			if h == s.header || (s.contains && strings.Contains(h, s.header)) {
				cols[s.field] = i

				break
			}
		}
	}

	return cols
}

type row struct {
	cells []string
	cols  map[field]int
}

func (r row) get(f field) string {
	i, ok := r.cols[f]
	if !ok || i >= len(r.cells) {
		return ""
	}

	return strings.TrimSpace(r.cells[i])
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// ParseSites turns sheet rows, header first, into sites. A missing code
// column is an error; other missing columns leave the field empty.
func ParseSites(rows [][]string) ([]*Site, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	cols := resolveColumns(rows[0], siteColumns)
	if _, ok := cols[fieldCode]; !ok {
		return nil, ErrMissingCodeColumn
	}

	out := make([]*Site, 0, len(rows)-1)

	for _, cells := range rows[1:] {
		if blank(cells) {
			continue
		}

		r := row{cells: cells, cols: cols}
		out = append(out, &Site{
			Code:    r.get(fieldCode),
			Name:    r.get(fieldName),
			Address: r.get(fieldAddress),
			Point:   spatial.ParsePoint(r.get(fieldLat), r.get(fieldLng)),
			Owner:   r.get(fieldOwner),
		})
	}

	return out, nil
}

// ParseAccess turns sheet rows, header first, into access records. It returns
// nil when the code or technician column is missing. Without a status column
// every row is active.
func ParseAccess(rows [][]string) []Access {
	if len(rows) == 0 {
		return nil
	}

	cols := resolveColumns(rows[0], accessColumns)
	_, hasCode := cols[fieldCode]
	_, hasTechnician := cols[fieldTechnician]

	if !hasCode || !hasTechnician {
		return nil
	}

	_, hasStatus := cols[fieldStatus]
	out := make([]Access, 0, len(rows)-1)

	for _, cells := range rows[1:] {
		if blank(cells) {
			continue
		}

		r := row{cells: cells, cols: cols}
		a := Access{
			Code:       r.get(fieldCode),
			Technician: r.get(fieldTechnician),
			Status:     r.get(fieldStatus),
		}

		if !hasStatus {
			a.Status = "ok"
		}

		out = append(out, a)
	}

	return out
}
