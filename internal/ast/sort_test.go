package ast

import "testing"

func TestSortDefinitionsNaturalOrdersNumericSuffixesNumerically(t *testing.T) {
	defs := []*Definition{
		{Name: "HTMLElement10"},
		{Name: "HTMLElement2"},
		{Name: "HTMLElement1"},
	}
	got := SortDefinitionsNatural(defs)
	want := []string{"HTMLElement1", "HTMLElement2", "HTMLElement10"}
	for i, w := range want {
		if got[i].Name != w {
			t.Errorf("position %d: expected %s, got %s", i, w, got[i].Name)
		}
	}
}

func TestSortDefinitionsNaturalDoesNotMutateInput(t *testing.T) {
	defs := []*Definition{{Name: "b"}, {Name: "a"}}
	_ = SortDefinitionsNatural(defs)
	if defs[0].Name != "b" || defs[1].Name != "a" {
		t.Errorf("expected the input slice order unchanged, got %v, %v", defs[0].Name, defs[1].Name)
	}
}
