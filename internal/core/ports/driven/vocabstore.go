package driven

import "github.com/meridian-sci/svomap-cli/internal/core/domain"

// VocabStore reads the user-supplied vocabulary configuration files.
type VocabStore interface {
	// LoadBackbone reads and validates the science backbone file.
	LoadBackbone(path string) (*domain.ScienceBackbone, error)

	// LoadSVODictionary reads and validates the SVO dictionary file.
	LoadSVODictionary(path string) (*domain.SVODictionary, error)
}
