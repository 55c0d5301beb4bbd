// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitesrj/sitesrj/resolver"
	"github.com/sitesrj/sitesrj/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteReport(t *testing.T) {
	erb1 := &Site{Code: "ERB1", Name: "NITEROI - CENTRO", Point: &spatial.Point{Lat: -22.9, Lng: -43.2}, Owner: "SBA"}
	erb2 := &Site{Code: "ERB2", Name: "MARICA", Point: &spatial.Point{Lat: -22.92, Lng: -42.82}}

	results := []BatchResult{
		{
			Address: "Rua Dr. March, Niterói",
			Result: &NearestResult{Sites: []NearestView{
				{
					SiteView:   SiteView{Site: erb1, City: "Niterói"},
					DistanceKm: 1.51183,
					Travel:     &resolver.TravelEstimate{DistanceKm: 2.346, Duration: 6 * time.Minute},
				},
				{SiteView: SiteView{Site: erb2, City: "Maricá"}, DistanceKm: 40.2},
			}},
		},
		{Address: "lugar nenhum", Err: errors.New("not found")},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteReport(path, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ReportSheet}, f.GetSheetList())

	rows, err := f.GetRows(ReportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Endereço", rows[0][0])
	assert.Equal(t, []string{
		"Rua Dr. March, Niterói", "1", "ERB1", "NITEROI - CENTRO", "Niterói", "SBA",
		"1.512", "2.35", "6", "-22.9", "-43.2",
	}, rows[1])
	assert.Equal(t, "2", rows[2][1])
	assert.Equal(t, "ERB2", rows[2][2])
	assert.Equal(t, "lugar nenhum", rows[3][0])
	assert.Equal(t, "not found", rows[3][len(rows[3])-1])
}
