package domain

import "testing"

func TestComponentCategoryIsValid(t *testing.T) {
	t.Run("all fixed categories are valid", func(t *testing.T) {
		for _, c := range AllComponentCategories() {
			if !c.IsValid() {
				t.Errorf("category %q should be valid", c)
			}
		}
	})

	t.Run("unknown category is invalid", func(t *testing.T) {
		if ComponentCategory("hypothesis").IsValid() {
			t.Error("unexpected valid category")
		}
	})

	t.Run("empty category is invalid", func(t *testing.T) {
		if ComponentCategory("").IsValid() {
			t.Error("empty category should be invalid")
		}
	})
}

func TestAllComponentCategories(t *testing.T) {
	cats := AllComponentCategories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	if cats[0] != CategoryGoal || cats[4] != CategoryIndicator {
		t.Error("category order changed")
	}
}
