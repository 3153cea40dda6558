package services

import (
	"fmt"

	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driving"
)

// Ensure VocabChecker implements the interface.
var _ driving.VocabService = (*VocabChecker)(nil)

// VocabChecker validates vocabulary configuration files.
type VocabChecker struct {
	store driven.VocabStore
}

// NewVocabChecker creates a new vocabulary checker.
func NewVocabChecker(store driven.VocabStore) *VocabChecker {
	return &VocabChecker{store: store}
}

// Check loads and validates both vocabulary files and reports
// non-fatal inconsistencies between them.
func (c *VocabChecker) Check(backbonePath, svoPath string) (*driving.VocabReport, error) {
	backbone, err := c.store.LoadBackbone(backbonePath)
	if err != nil {
		return nil, err
	}
	dict, err := c.store.LoadSVODictionary(svoPath)
	if err != nil {
		return nil, err
	}

	report := &driving.VocabReport{
		Domains:   len(backbone.Domains),
		Variables: dict.Len(),
	}
	for _, d := range backbone.Domains {
		report.Subdisciplines += len(d.Subdisciplines)
		if len(d.Subdisciplines) == 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("domain %q has no subdisciplines", d.Name))
		}
		if len(d.Keywords) == 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("domain %q has no keywords", d.Name))
		}
	}

	for _, entry := range dict.Entries() {
		if entry.Domain == "" {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("variable %q has no domain", entry.Name))
			continue
		}
		if _, ok := backbone.Domain(entry.Domain); !ok {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("variable %q references unknown domain %q", entry.Name, entry.Domain))
		}
	}

	return report, nil
}
