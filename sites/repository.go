// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package sites

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

type snapshot struct {
	dataset *Dataset
	byCode  map[string][]*Site

	// technicians holds the sorted active technicians per code, nil when
	// technician data is unavailable
	technicians map[string][]string
}

func newSnapshot(ds *Dataset) *snapshot {
	s := &snapshot{
		dataset: ds,
		byCode:  make(map[string][]*Site),
	}

	for _, site := range ds.Sites {
		k := codeKey(site.Code)
		if k == "" {
			continue
		}

		s.byCode[k] = append(s.byCode[k], site)
	}

	if ds.Access == nil {
		return s
	}

	seen := make(map[string]map[string]bool)
	s.technicians = make(map[string][]string)

	for _, a := range ds.Access {
		k := codeKey(a.Code)
		name := strings.TrimSpace(a.Technician)

		if k == "" || name == "" || !a.Active() {
			continue
		}

		if seen[k] == nil {
			seen[k] = make(map[string]bool)
		}

		if seen[k][name] {
			continue
		}

		seen[k][name] = true
		s.technicians[k] = append(s.technicians[k], name)
	}

	for _, names := range s.technicians {
		slices.Sort(names)
	}

	return s
}

// Repository holds the current dataset. Queries see a consistent snapshot
// while Reload swaps in a new one.
type Repository struct {
	source Source

	mu   sync.RWMutex
	snap *snapshot
}

// NewRepository loads source once and returns a repository over it.
func NewRepository(source Source) (*Repository, error) {
	r := &Repository{source: source}
	if err := r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

// Reload re-reads the source. On failure the previous data stays in place.
func (r *Repository) Reload() error {
	ds, err := r.source.Load()
	if err != nil {
		return fmt.Errorf("loading sites: %w", err)
	}

	snap := newSnapshot(ds)

	r.mu.Lock()
	r.snap = snap
	r.mu.Unlock()

	return nil
}

func (r *Repository) current() *snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snap
}

// Sites returns every site in file order. The slice must not be modified.
func (r *Repository) Sites() []*Site {
	return r.current().dataset.Sites
}

// FindByCode returns the sites whose code equals code, ignoring case.
func (r *Repository) FindByCode(code string) []*Site {
	k := codeKey(code)
	if k == "" {
		return nil
	}

	return slices.Clone(r.current().byCode[k])
}

// TechniciansFor returns the distinct active technicians for code, sorted.
func (r *Repository) TechniciansFor(code string) []string {
	k := codeKey(code)
	if k == "" {
		return nil
	}

	return slices.Clone(r.current().technicians[k])
}

// HasTechnicians reports whether technician data was loaded.
func (r *Repository) HasTechnicians() bool {
	return r.current().technicians != nil
}
