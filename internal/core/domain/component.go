package domain

// ComponentCategory classifies a tagged decision-component span.
// The set is fixed: every extracted span carries exactly one of the
// five categories below.
type ComponentCategory string

const (
	// CategoryGoal marks a broad desired end state.
	CategoryGoal ComponentCategory = "goal"

	// CategoryObjective marks a measurable target supporting a goal.
	CategoryObjective ComponentCategory = "objective"

	// CategoryVariable marks a measurable quantity.
	CategoryVariable ComponentCategory = "variable"

	// CategoryConstraint marks a limiting condition.
	CategoryConstraint ComponentCategory = "constraint"

	// CategoryIndicator marks a proxy used to track progress.
	CategoryIndicator ComponentCategory = "indicator"
)

// AllComponentCategories returns the fixed category set in stable order.
func AllComponentCategories() []ComponentCategory {
	return []ComponentCategory{
		CategoryGoal,
		CategoryObjective,
		CategoryVariable,
		CategoryConstraint,
		CategoryIndicator,
	}
}

// IsValid reports whether the category is one of the fixed five.
func (c ComponentCategory) IsValid() bool {
	switch c {
	case CategoryGoal, CategoryObjective, CategoryVariable, CategoryConstraint, CategoryIndicator:
		return true
	default:
		return false
	}
}

// String returns the category label.
func (c ComponentCategory) String() string {
	return string(c)
}

// DecisionComponent is a tagged span of narrative text.
// Created by the extractor; never mutated.
type DecisionComponent struct {
	// ID is the unique identifier for the component.
	ID string

	// DocumentID links to the Document the span was found in.
	DocumentID string

	// Category is one of the five fixed labels.
	Category ComponentCategory

	// Text is the matched span.
	Text string

	// Start and End are byte offsets of the span within the document
	// content. End is exclusive.
	Start int
	End   int
}
