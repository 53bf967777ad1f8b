package recommend

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseTypes(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"Life", []string{"Life"}},
		{"Life|Health", []string{"Life", "Health"}},
		{" Life | Health ", []string{"Life", "Health"}},
		{"", nil},
		{"   ", nil},
		{"Life||Health", []string{"Life", "Health"}},
	}

	for _, tt := range tests {
		if got := ParseTypes(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTypes(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestMatchProducts(t *testing.T) {
	catalog := []Product{
		{Code: "P1", Description: "Term Life", Types: []string{"Life"}},
		{Code: "P2", Description: "Family Shield", Types: []string{"Life", "Health"}},
		{Code: "P3", Description: "Motor Cover", Types: []string{"Vehicle"}},
		{Code: "P4", Description: "Travel Lite", Types: []string{"Travel"}},
	}
	needs := CategorySet{CategoryLife: true, CategoryHealth: true}

	matches := MatchProducts(needs, catalog)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Product.Code != "P2" || matches[0].Score != 2 {
		t.Errorf("best match = %s score %d, want P2 score 2", matches[0].Product.Code, matches[0].Score)
	}
	if matches[1].Product.Code != "P1" || matches[1].Score != 1 {
		t.Errorf("second match = %s score %d, want P1 score 1", matches[1].Product.Code, matches[1].Score)
	}

	for _, m := range matches {
		if m.Score <= 0 {
			t.Errorf("match %s has non-positive score %d", m.Product.Code, m.Score)
		}
		if m.Score > len(needs) {
			t.Errorf("match %s score %d exceeds |categories| %d", m.Product.Code, m.Score, len(needs))
		}
	}
}

func TestMatchProducts_StableTieBreak(t *testing.T) {
	catalog := []Product{
		{Code: "A", Types: []string{"Life"}},
		{Code: "B", Types: []string{"Health"}},
		{Code: "C", Types: []string{"Life"}},
	}
	needs := CategorySet{CategoryLife: true, CategoryHealth: true}

	matches := MatchProducts(needs, catalog)

	got := make([]string, len(matches))
	for i, m := range matches {
		got[i] = m.Product.Code
	}
	// All scores tie at 1, so catalog order must be preserved.
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie order = %v, want %v", got, want)
	}
}

func TestMatchProducts_EmptyCategories(t *testing.T) {
	catalog := []Product{
		{Code: "P1", Types: []string{"Life"}},
		{Code: "P2", Types: []string{"Health"}},
	}

	if matches := MatchProducts(CategorySet{}, catalog); len(matches) != 0 {
		t.Errorf("expected no matches for empty category set, got %d", len(matches))
	}
}

func TestMatchProducts_ExplanationOrder(t *testing.T) {
	// Explanations join in fixed priority order (Life before Health),
	// regardless of the product's tag order.
	catalog := []Product{
		{Code: "P1", Types: []string{"Health", "Life"}},
	}
	needs := CategorySet{CategoryHealth: true, CategoryLife: true}

	matches := MatchProducts(needs, catalog)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	want := Explanations[CategoryLife] + " " + Explanations[CategoryHealth]
	if matches[0].Explanation != want {
		t.Errorf("Explanation = %q, want %q", matches[0].Explanation, want)
	}
	if !strings.HasPrefix(matches[0].Explanation, Explanations[CategoryLife]) {
		t.Error("Life explanation should come first")
	}
	if got := matches[0].Matched; !reflect.DeepEqual(got, []Category{CategoryLife, CategoryHealth}) {
		t.Errorf("Matched = %v, want [Life Health]", got)
	}
}

func TestMatchProducts_NoTypesNeverMatches(t *testing.T) {
	catalog := []Product{{Code: "P1", Types: ParseTypes("")}}
	needs := CategorySet{CategoryLife: true, CategoryHealth: true, CategoryVehicle: true, CategoryProperty: true}

	if matches := MatchProducts(needs, catalog); len(matches) != 0 {
		t.Errorf("product without types matched: %v", matches)
	}
}
