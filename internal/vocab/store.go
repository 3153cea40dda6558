// Package vocab reads the user-supplied vocabulary files: the science
// backbone taxonomy and the SVO dictionary, both YAML.
package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VocabStore = (*Store)(nil)

// Store loads vocabulary files from disk.
type Store struct{}

// NewStore creates a new vocabulary store.
func NewStore() *Store {
	return &Store{}
}

// backboneFile is the YAML shape of the backbone file.
type backboneFile struct {
	Domains []struct {
		Name           string   `yaml:"name"`
		Subdisciplines []string `yaml:"subdisciplines"`
		Keywords       []string `yaml:"keywords"`
	} `yaml:"domains"`
}

// svoFile is the YAML shape of the SVO dictionary file.
type svoFile struct {
	Variables []struct {
		Name         string   `yaml:"name"`
		StandardName string   `yaml:"standard_name"`
		Units        string   `yaml:"units"`
		DataSource   string   `yaml:"data_source"`
		Domain       string   `yaml:"domain"`
		Keywords     []string `yaml:"keywords"`
	} `yaml:"variables"`
}

// LoadBackbone reads and validates the science backbone file.
func (s *Store) LoadBackbone(path string) (*domain.ScienceBackbone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backbone: %w", err)
	}

	var file backboneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse backbone %s: %v", domain.ErrMalformedVocabulary, path, err)
	}

	backbone := &domain.ScienceBackbone{
		Domains: make([]domain.BackboneDomain, len(file.Domains)),
	}
	for i, d := range file.Domains {
		backbone.Domains[i] = domain.BackboneDomain{
			Name:           d.Name,
			Subdisciplines: d.Subdisciplines,
			Keywords:       d.Keywords,
		}
	}

	if err := backbone.Validate(); err != nil {
		return nil, fmt.Errorf("backbone %s: %w", path, err)
	}
	return backbone, nil
}

// LoadSVODictionary reads and validates the SVO dictionary file.
func (s *Store) LoadSVODictionary(path string) (*domain.SVODictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read SVO dictionary: %w", err)
	}

	var file svoFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse SVO dictionary %s: %v", domain.ErrMalformedVocabulary, path, err)
	}

	entries := make([]domain.SVOEntry, len(file.Variables))
	for i, v := range file.Variables {
		entries[i] = domain.SVOEntry{
			Name:         v.Name,
			StandardName: v.StandardName,
			Units:        v.Units,
			DataSource:   v.DataSource,
			Domain:       v.Domain,
			Keywords:     v.Keywords,
		}
	}

	dict := domain.NewSVODictionary(entries)
	if err := dict.Validate(); err != nil {
		return nil, fmt.Errorf("SVO dictionary %s: %w", path, err)
	}
	return dict, nil
}
