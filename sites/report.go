// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

const ReportSheet = "proximos"

// BatchResult is the outcome of one address search in a batch.
type BatchResult struct {
	Address string
	Result  *NearestResult
	Err     error
}

var reportHeader = []any{
	"Endereço", "Posição", "Sigla", "Nome", "Cidade", "Detentora",
	"Distância (km)", "Por estrada (km)", "Tempo (min)", "Lat", "Lon", "Erro",
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}

func reportRows(r BatchResult) [][]any {
	if r.Err != nil {
		return [][]any{{r.Address, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, r.Err.Error()}}
	}

	if r.Result == nil || len(r.Result.Sites) == 0 {
		return [][]any{{r.Address, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, "nenhum site com coordenadas"}}
	}

	rows := make([][]any, 0, len(r.Result.Sites))

	for i, s := range r.Result.Sites {
		var travelKm, travelMin any
		if s.Travel != nil {
			travelKm = round(s.Travel.DistanceKm, 2)
			travelMin = round(s.Travel.Duration.Minutes(), 1)
		}

		rows = append(rows, []any{
			r.Address, i + 1, s.Code, s.Name, s.City, s.Owner,
			round(s.DistanceKm, 3), travelKm, travelMin,
			s.Point.Lat, s.Point.Lng, nil,
		})
	}

	return rows
}

// WriteReport saves results as a one-sheet workbook, one row per ranked site
// and one row per failed address.
func WriteReport(path string, results []BatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(ReportSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(ReportSheet)
	if err != nil {
		return fmt.Errorf("creating stream writer: %w", err)
	}

	if err := sw.SetRow("A1", reportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	rowNum := 2

	for _, r := range results {
		for _, row := range reportRows(r) {
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}

			if err := sw.SetRow(cell, row); err != nil {
				return fmt.Errorf("writing row %d: %w", rowNum, err)
			}

			rowNum++
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing rows: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if index, err := f.GetSheetIndex(ReportSheet); err == nil {
		f.SetActiveSheet(index)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	return nil
}
