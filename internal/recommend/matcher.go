package recommend

import (
	"sort"
	"strings"
)

// Product is one row of the product catalog. Loaded once per run and
// immutable afterwards.
type Product struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Types       []string `json:"insurance_types"` // parsed from the raw tag, e.g. "Life|Health"
}

// ParseTypes splits a raw insurance-type tag on "|" and trims each
// piece. An empty or missing tag yields no types rather than a
// placeholder value.
func ParseTypes(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, "|")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			types = append(types, p)
		}
	}
	return types
}

// Match is a catalog product scored against a needed-category set.
// The score is the number of categories the product covers.
type Match struct {
	Product     Product    `json:"product"`
	Score       int        `json:"score"`
	Matched     []Category `json:"matched_categories"`
	Explanation string     `json:"explanation"`
}

// MatchProducts scores every catalog product against the needed
// categories and returns the strictly positive matches, best first.
// Equal scores keep catalog order, so output is deterministic.
func MatchProducts(needs CategorySet, catalog []Product) []Match {
	if len(needs) == 0 {
		return nil
	}

	var matches []Match
	for _, p := range catalog {
		matched := matchedCategories(p, needs)
		if len(matched) == 0 {
			continue
		}

		reasons := make([]string, 0, len(matched))
		for _, c := range matched {
			reasons = append(reasons, Explain(c))
		}

		matches = append(matches, Match{
			Product:     p,
			Score:       len(matched),
			Matched:     matched,
			Explanation: strings.Join(reasons, " "),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// matchedCategories intersects a product's insurance types with the
// needed set, in fixed priority order.
func matchedCategories(p Product, needs CategorySet) []Category {
	typeSet := make(map[Category]bool, len(p.Types))
	for _, t := range p.Types {
		typeSet[Category(t)] = true
	}

	var matched []Category
	for _, c := range categoryPriority {
		if needs[c] && typeSet[c] {
			matched = append(matched, c)
		}
	}
	return matched
}
