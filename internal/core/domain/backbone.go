package domain

import (
	"fmt"
	"strings"
)

// BackboneDomain is one top-level domain of the science backbone with
// its subdisciplines and optional extra match keywords.
type BackboneDomain struct {
	// Name is the domain name (e.g., "hydrology").
	Name string

	// Subdisciplines are the second-level entries under this domain.
	Subdisciplines []string

	// Keywords are additional terms that count as evidence for this
	// domain beyond the domain and subdiscipline names themselves.
	Keywords []string
}

// MatchTerms returns the lowercased set of terms that count as evidence
// for the domain: its name, its subdiscipline names and its keywords.
func (d BackboneDomain) MatchTerms() map[string]struct{} {
	terms := make(map[string]struct{}, 1+len(d.Subdisciplines)+len(d.Keywords))
	add := func(s string) {
		for _, w := range strings.Fields(strings.ToLower(s)) {
			terms[w] = struct{}{}
		}
	}
	add(d.Name)
	for _, s := range d.Subdisciplines {
		add(s)
	}
	for _, k := range d.Keywords {
		add(k)
	}
	return terms
}

// ScienceBackbone is the user-supplied two-level taxonomy of scientific
// domains and subdisciplines. Read-only during a run.
type ScienceBackbone struct {
	// Domains are the top-level entries in file order.
	Domains []BackboneDomain
}

// Validate checks the backbone for structural problems: no domains,
// unnamed domains, or duplicate domain names.
func (b *ScienceBackbone) Validate() error {
	if len(b.Domains) == 0 {
		return fmt.Errorf("%w: backbone has no domains", ErrMalformedVocabulary)
	}
	seen := make(map[string]struct{}, len(b.Domains))
	for i, d := range b.Domains {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: domain %d has no name", ErrMalformedVocabulary, i)
		}
		key := strings.ToLower(d.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate domain %q", ErrMalformedVocabulary, d.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Domain returns the domain with the given name, case-insensitively.
func (b *ScienceBackbone) Domain(name string) (*BackboneDomain, bool) {
	for i := range b.Domains {
		if strings.EqualFold(b.Domains[i].Name, name) {
			return &b.Domains[i], true
		}
	}
	return nil, false
}
