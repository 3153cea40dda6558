package domain

import (
	"fmt"
	"strings"
)

// SVOEntry is a curated Scientific Variable Object record: a
// standardised description of one measurable variable.
// Supplied as static configuration; looked up, never modified.
type SVOEntry struct {
	// Name is the dictionary key the entry is registered under.
	Name string

	// StandardName is the canonical variable name
	// (e.g., "atmosphere_water__precipitation_leq_volume_flux").
	StandardName string

	// Units is the measurement unit string.
	Units string

	// DataSource names where observations of this variable come from.
	DataSource string

	// Domain is the backbone domain the variable belongs to.
	Domain string

	// Keywords are free-text terms that should link to this variable.
	Keywords []string
}

// SVODictionary is the full variable vocabulary keyed by entry name.
type SVODictionary struct {
	entries map[string]SVOEntry
	order   []string
}

// NewSVODictionary builds a dictionary from entries.
// Entry order is preserved for reporting.
func NewSVODictionary(entries []SVOEntry) *SVODictionary {
	d := &SVODictionary{
		entries: make(map[string]SVOEntry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		key := strings.ToLower(e.Name)
		if _, dup := d.entries[key]; !dup {
			d.order = append(d.order, key)
		}
		d.entries[key] = e
	}
	return d
}

// Validate checks every entry has a name, a standard name and at least
// one keyword to match on.
func (d *SVODictionary) Validate() error {
	if len(d.entries) == 0 {
		return fmt.Errorf("%w: SVO dictionary is empty", ErrMalformedVocabulary)
	}
	for _, key := range d.order {
		e := d.entries[key]
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: SVO entry with empty name", ErrMalformedVocabulary)
		}
		if strings.TrimSpace(e.StandardName) == "" {
			return fmt.Errorf("%w: SVO entry %q has no standard name", ErrMalformedVocabulary, e.Name)
		}
		if len(e.Keywords) == 0 {
			return fmt.Errorf("%w: SVO entry %q has no keywords", ErrMalformedVocabulary, e.Name)
		}
	}
	return nil
}

// Lookup returns the entry registered under name, case-insensitively.
func (d *SVODictionary) Lookup(name string) (SVOEntry, bool) {
	e, ok := d.entries[strings.ToLower(name)]
	return e, ok
}

// Has reports whether name keys into the dictionary.
func (d *SVODictionary) Has(name string) bool {
	_, ok := d.entries[strings.ToLower(name)]
	return ok
}

// Entries returns all entries in registration order.
func (d *SVODictionary) Entries() []SVOEntry {
	out := make([]SVOEntry, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.entries[key])
	}
	return out
}

// Len returns the number of entries.
func (d *SVODictionary) Len() int {
	return len(d.entries)
}
