package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

type stubVocabStore struct {
	backbone    *domain.ScienceBackbone
	dict        *domain.SVODictionary
	backboneErr error
	dictErr     error
}

func (s *stubVocabStore) LoadBackbone(string) (*domain.ScienceBackbone, error) {
	return s.backbone, s.backboneErr
}

func (s *stubVocabStore) LoadSVODictionary(string) (*domain.SVODictionary, error) {
	return s.dict, s.dictErr
}

func TestVocabChecker_Check(t *testing.T) {
	t.Run("clean vocabulary has no warnings", func(t *testing.T) {
		store := &stubVocabStore{
			backbone: &domain.ScienceBackbone{Domains: []domain.BackboneDomain{{
				Name:           "hydrology",
				Subdisciplines: []string{"surface water", "groundwater"},
				Keywords:       []string{"river", "aquifer"},
			}}},
			dict: domain.NewSVODictionary([]domain.SVOEntry{{
				Name:         "streamflow",
				StandardName: "channel_water_flow",
				Domain:       "hydrology",
				Keywords:     []string{"discharge"},
			}}),
		}
		checker := NewVocabChecker(store)

		report, err := checker.Check("backbone.yaml", "svo.yaml")
		require.NoError(t, err)
		assert.Equal(t, 1, report.Domains)
		assert.Equal(t, 2, report.Subdisciplines)
		assert.Equal(t, 1, report.Variables)
		assert.Empty(t, report.Warnings)
	})

	t.Run("inconsistencies reported as warnings", func(t *testing.T) {
		store := &stubVocabStore{
			backbone: &domain.ScienceBackbone{Domains: []domain.BackboneDomain{{
				Name: "hydrology",
			}}},
			dict: domain.NewSVODictionary([]domain.SVOEntry{
				{Name: "streamflow", StandardName: "channel_water_flow", Domain: "oceanography"},
				{Name: "yield", StandardName: "crop_yield"},
			}),
		}
		checker := NewVocabChecker(store)

		report, err := checker.Check("backbone.yaml", "svo.yaml")
		require.NoError(t, err)
		require.Len(t, report.Warnings, 4)
		assert.Contains(t, report.Warnings[0], "no subdisciplines")
		assert.Contains(t, report.Warnings[1], "no keywords")
		assert.Contains(t, report.Warnings[2], "unknown domain")
		assert.Contains(t, report.Warnings[3], "no domain")
	})

	t.Run("load errors propagate", func(t *testing.T) {
		wantErr := errors.New("missing file")
		checker := NewVocabChecker(&stubVocabStore{backboneErr: wantErr})

		_, err := checker.Check("backbone.yaml", "svo.yaml")
		assert.ErrorIs(t, err, wantErr)
	})
}
