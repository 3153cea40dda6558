package domain

import (
	"errors"
	"testing"
)

func testEntries() []SVOEntry {
	return []SVOEntry{
		{
			Name:         "streamflow",
			StandardName: "channel_water_flow__volume_flux",
			Units:        "m3 s-1",
			DataSource:   "USGS NWIS",
			Domain:       "hydrology",
			Keywords:     []string{"discharge", "flow", "river"},
		},
		{
			Name:         "precipitation",
			StandardName: "atmosphere_water__precipitation_leq_volume_flux",
			Units:        "mm d-1",
			DataSource:   "NOAA",
			Domain:       "atmospheric science",
			Keywords:     []string{"rain", "rainfall", "snow"},
		},
	}
}

func TestSVODictionaryLookup(t *testing.T) {
	d := NewSVODictionary(testEntries())

	t.Run("case-insensitive lookup", func(t *testing.T) {
		e, ok := d.Lookup("Streamflow")
		if !ok {
			t.Fatal("expected entry")
		}
		if e.Units != "m3 s-1" {
			t.Errorf("wrong units: %s", e.Units)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, ok := d.Lookup("salinity"); ok {
			t.Error("unexpected entry")
		}
		if d.Has("salinity") {
			t.Error("Has should be false for missing key")
		}
	})

	t.Run("entries preserve order", func(t *testing.T) {
		entries := d.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Name != "streamflow" || entries[1].Name != "precipitation" {
			t.Error("entry order not preserved")
		}
	})
}

func TestSVODictionaryValidate(t *testing.T) {
	t.Run("valid dictionary", func(t *testing.T) {
		if err := NewSVODictionary(testEntries()).Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty dictionary", func(t *testing.T) {
		err := NewSVODictionary(nil).Validate()
		if !errors.Is(err, ErrMalformedVocabulary) {
			t.Fatalf("expected ErrMalformedVocabulary, got %v", err)
		}
	})

	t.Run("missing standard name", func(t *testing.T) {
		err := NewSVODictionary([]SVOEntry{{Name: "x", Keywords: []string{"y"}}}).Validate()
		if !errors.Is(err, ErrMalformedVocabulary) {
			t.Fatalf("expected ErrMalformedVocabulary, got %v", err)
		}
	})

	t.Run("missing keywords", func(t *testing.T) {
		err := NewSVODictionary([]SVOEntry{{Name: "x", StandardName: "y"}}).Validate()
		if !errors.Is(err, ErrMalformedVocabulary) {
			t.Fatalf("expected ErrMalformedVocabulary, got %v", err)
		}
	})
}
