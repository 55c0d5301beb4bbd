// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

// Package city detects which known municipality a site name or address
// refers to.
package city

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sitesrj/sitesrj/utils/textutils"
)

var (
	streetIndicators = []string{" COM ", " C/ ", " R.", " AV."}

	streetTypes = map[string]bool{
		"r": true, "rua": true, "av": true, "avenida": true, "al": true, "alameda": true,
		"trav": true, "travessa": true, "rod": true, "rodovia": true, "estr": true, "estrada": true,
		"lgo": true, "largo": true, "pca": true, "praca": true,
	}

	prepositions = map[string]bool{
		"de": true, "da": true, "das": true, "do": true, "dos": true, "e": true,
	}
)

type entry struct {
	key  string // folded form
	name string // canonical form
}

// Extractor matches free text against a municipality reference table.
type Extractor struct {
	entries []entry
	index   map[string]string
}

// New builds an Extractor from canonical names and folded aliases.
func New(names []string, aliases map[string]string) *Extractor {
	x := &Extractor{index: make(map[string]string, len(names)+len(aliases))}

	for _, n := range names {
		key := textutils.LowerASCIIFolding(n)
		x.index[key] = n
		x.entries = append(x.entries, entry{key: key, name: n})
	}

	aliasKeys := make([]string, 0, len(aliases))
	for k := range aliases {
		aliasKeys = append(aliasKeys, k)
	}

	sort.Strings(aliasKeys)

	for _, k := range aliasKeys {
		key := textutils.LowerASCIIFolding(k)
		x.index[key] = aliases[k]
		x.entries = append(x.entries, entry{key: key, name: aliases[k]})
	}

	return x
}

var defaultExtractor = New(Municipalities, Aliases)

// Default returns the extractor for the Rio de Janeiro municipalities.
func Default() *Extractor {
	return defaultExtractor
}

// Extract runs the default extractor.
func Extract(text, fallback string) (string, bool) {
	return defaultExtractor.Extract(text, fallback)
}

// Lookup returns the canonical name for an exact (folded) match.
func (x *Extractor) Lookup(name string) (string, bool) {
	n, ok := x.index[textutils.LowerASCIIFolding(name)]

	return n, ok
}

// Extract returns the municipality referenced by text.
//
// A prefix before the first hyphen is tried first as an exact name. Text
// that looks like a street address yields nothing. Otherwise the last
// municipality mentioned in the text wins, then the recased prefix, then the
// same scan over fallback.
func (x *Extractor) Extract(text, fallback string) (string, bool) {
	candidate := ""

	if i := strings.Index(text, "-"); i >= 0 {
		candidate = stripStateSuffix(strings.TrimSpace(text[:i]))
		if !utf8.ValidString(candidate) || len([]rune(candidate)) < 2 || textutils.CountDigits(candidate) > 0 {
			candidate = ""
		}

		if candidate != "" {
			if name, ok := x.Lookup(candidate); ok {
				return name, true
			}
		}
	}

	if strings.TrimSpace(text) != "" {
		if LooksLikeStreet(text) {
			return "", false
		}

		if name, ok := x.scan(text); ok {
			return name, true
		}
	}

	if candidate != "" {
		return x.recase(candidate), true
	}

	if strings.TrimSpace(fallback) == "" || LooksLikeStreet(fallback) {
		return "", false
	}

	return x.scan(fallback)
}

// LooksLikeStreet reports whether text reads as a street address rather
// than a place name.
func LooksLikeStreet(text string) bool {
	upper := strings.ToUpper(textutils.StripAccents(text))
	for _, ind := range streetIndicators {
		if strings.Contains(upper, ind) {
			return true
		}
	}

	fields := strings.Fields(textutils.LowerASCIIFolding(text))
	if len(fields) > 0 && streetTypes[strings.TrimRight(fields[0], ".,:")] {
		return true
	}

	return textutils.CountDigits(text) >= 3 && !strings.Contains(text, "-")
}

type match struct {
	start, end int
	name       string
}

func isBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', ',', '-', '/':
		return true
	}

	return false
}

// scan finds every bounded occurrence of a reference entry and returns the
// one starting rightmost. Occurrences nested inside a longer occurrence
// ("Piraí" within "Barra do Piraí") are ignored.
func (x *Extractor) scan(text string) (string, bool) {
	key := textutils.LowerASCIIFolding(text)

	var found []match

	for _, e := range x.entries {
		for from := 0; from < len(key); {
			i := strings.Index(key[from:], e.key)
			if i < 0 {
				break
			}

			start := from + i
			end := start + len(e.key)

			if (start == 0 || isBoundary(key[start-1])) && (end == len(key) || isBoundary(key[end])) {
				found = append(found, match{start: start, end: end, name: e.name})
			}

			from = start + 1
		}
	}

	var best *match

	for i := range found {
		m := &found[i]
		if nested(m, found) {
			continue
		}

		if best == nil || m.start > best.start || (m.start == best.start && m.end > best.end) {
			best = m
		}
	}

	if best == nil {
		return "", false
	}

	return best.name, true
}

func nested(m *match, all []match) bool {
	for i := range all {
		o := &all[i]
		if o.start <= m.start && o.end >= m.end && (o.end-o.start) > (m.end-m.start) {
			return true
		}
	}

	return false
}

// e.g. "NITEROI RJ" -> "NITEROI", "NITEROI/RJ" -> "NITEROI".
func stripStateSuffix(s string) string {
	if StateCodes[strings.ToUpper(s)] {
		return ""
	}

	i := strings.LastIndexAny(s, " /")
	if i <= 0 {
		return s
	}

	if StateCodes[strings.ToUpper(strings.TrimSpace(s[i+1:]))] {
		return strings.TrimRight(strings.TrimSpace(s[:i]), " /,")
	}

	return s
}

// recase title-cases a candidate the way municipality names are written.
func (x *Extractor) recase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		switch {
		case i > 0 && prepositions[textutils.LowerASCIIFolding(w)]:
			words[i] = strings.ToLower(w)
		case isStateCode(w):
			// kept verbatim
		default:
			r := []rune(strings.ToLower(w))
			r[0] = unicode.ToUpper(r[0])
			words[i] = string(r)
		}
	}

	out := strings.Join(words, " ")
	if name, ok := x.Lookup(out); ok {
		return name
	}

	return out
}

func isStateCode(w string) bool {
	n := len([]rune(w))

	return n >= 2 && n <= 3 && strings.ToUpper(w) == w && StateCodes[w]
}
