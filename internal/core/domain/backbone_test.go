package domain

import (
	"errors"
	"testing"
)

func testBackbone() *ScienceBackbone {
	return &ScienceBackbone{
		Domains: []BackboneDomain{
			{
				Name:           "hydrology",
				Subdisciplines: []string{"surface water", "groundwater"},
				Keywords:       []string{"streamflow", "aquifer"},
			},
			{
				Name:           "ecology",
				Subdisciplines: []string{"population ecology"},
			},
		},
	}
}

func TestBackboneValidate(t *testing.T) {
	t.Run("valid backbone", func(t *testing.T) {
		if err := testBackbone().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no domains", func(t *testing.T) {
		b := &ScienceBackbone{}
		if err := b.Validate(); !errors.Is(err, ErrMalformedVocabulary) {
			t.Fatalf("expected ErrMalformedVocabulary, got %v", err)
		}
	})

	t.Run("unnamed domain", func(t *testing.T) {
		b := &ScienceBackbone{Domains: []BackboneDomain{{Name: "  "}}}
		if err := b.Validate(); !errors.Is(err, ErrMalformedVocabulary) {
			t.Fatalf("expected ErrMalformedVocabulary, got %v", err)
		}
	})

	t.Run("duplicate domain", func(t *testing.T) {
		b := &ScienceBackbone{Domains: []BackboneDomain{
			{Name: "Hydrology"},
			{Name: "hydrology"},
		}}
		if err := b.Validate(); !errors.Is(err, ErrMalformedVocabulary) {
			t.Fatalf("expected ErrMalformedVocabulary, got %v", err)
		}
	})
}

func TestBackboneMatchTerms(t *testing.T) {
	d := testBackbone().Domains[0]
	terms := d.MatchTerms()

	for _, want := range []string{"hydrology", "surface", "water", "groundwater", "streamflow", "aquifer"} {
		if _, ok := terms[want]; !ok {
			t.Errorf("expected term %q in match set", want)
		}
	}
	if _, ok := terms["ecology"]; ok {
		t.Error("match set leaked terms from another domain")
	}
}

func TestBackboneDomainLookup(t *testing.T) {
	b := testBackbone()

	d, ok := b.Domain("HYDROLOGY")
	if !ok {
		t.Fatal("expected case-insensitive match")
	}
	if d.Name != "hydrology" {
		t.Errorf("wrong domain: %s", d.Name)
	}

	if _, ok := b.Domain("geology"); ok {
		t.Error("unexpected match for unknown domain")
	}
}
