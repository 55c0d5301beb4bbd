// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

const (
	DefaultFile        = "enderecos.xlsx"
	DefaultSitesSheet  = "dados"
	DefaultAccessSheet = "acessos"
)

// Source produces a fresh Dataset on every call.
type Source interface {
	Load() (*Dataset, error)
}

// WorkbookSource reads sites and technician access from an .xlsx file.
type WorkbookSource struct {
	Path        string
	SitesSheet  string
	AccessSheet string
}

// NewWorkbookSource returns a source with the default sheet names filled in.
func NewWorkbookSource(path, sitesSheet, accessSheet string) *WorkbookSource {
	if path == "" {
		path = DefaultFile
	}

	if sitesSheet == "" {
		sitesSheet = DefaultSitesSheet
	}

	if accessSheet == "" {
		accessSheet = DefaultAccessSheet
	}

	return &WorkbookSource{Path: path, SitesSheet: sitesSheet, AccessSheet: accessSheet}
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)

	return err == nil && idx >= 0
}

func (w *WorkbookSource) Load() (*Dataset, error) {
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", w.Path, err)
	}
	defer f.Close()

	sheet := w.SitesSheet
	if !hasSheet(f, sheet) {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook %s has no sheets", w.Path)
		}

		log.Printf("⚠️  Sheet '%s' not found in %s, using '%s'", w.SitesSheet, w.Path, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	sites, err := ParseSites(rows)
	if err != nil {
		return nil, fmt.Errorf("parsing sheet %s: %w", sheet, err)
	}

	ds := &Dataset{Sites: sites}

	if w.AccessSheet == "" || w.AccessSheet == sheet || !hasSheet(f, w.AccessSheet) {
		log.Printf("Technician sheet '%s' not available, technician lookups disabled", w.AccessSheet)

		return ds, nil
	}

	accessRows, err := f.GetRows(w.AccessSheet)
	if err != nil {
		log.Printf("⚠️  Reading sheet %s: %v, technician lookups disabled", w.AccessSheet, err)

		return ds, nil
	}

	ds.Access = ParseAccess(accessRows)
	if ds.Access == nil {
		log.Printf("⚠️  Sheet '%s' lacks code or technician columns, technician lookups disabled", w.AccessSheet)
	}

	return ds, nil
}
