package recommend

// Category is one of the fixed insurance coverage categories.
type Category string

const (
	CategoryLife     Category = "Life"
	CategoryHealth   Category = "Health"
	CategoryVehicle  Category = "Vehicle"
	CategoryProperty Category = "Property"
	CategoryGeneral  Category = "General"
)

// categoryPriority fixes the order in which categories appear in
// rendered output and explanation text.
var categoryPriority = []Category{
	CategoryLife,
	CategoryHealth,
	CategoryVehicle,
	CategoryProperty,
	CategoryGeneral,
}

// Explanations maps each category to the reason it gets recommended.
var Explanations = map[Category]string{
	CategoryLife:     "Recommended due to mid-career or parenting stage to support dependents.",
	CategoryHealth:   "Recommended because age is 35 or above — higher health risk.",
	CategoryVehicle:  "Suggested since the client owns a vehicle and might need vehicle protection.",
	CategoryProperty: "Recommended for clients nearing retirement to protect assets.",
	CategoryGeneral:  "Additional coverage based on general lifestyle and risk.",
}

// Explain returns the explanation for a category, falling back to the
// General text for categories without an entry of their own.
func Explain(c Category) string {
	if s, ok := Explanations[c]; ok {
		return s
	}
	return Explanations[CategoryGeneral]
}

// CategorySet is an unordered set of coverage categories.
type CategorySet map[Category]bool

// Contains reports whether the set includes the category.
func (s CategorySet) Contains(c Category) bool { return s[c] }

// Sorted returns the set's members in fixed priority order.
func (s CategorySet) Sorted() []Category {
	out := make([]Category, 0, len(s))
	for _, c := range categoryPriority {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}

// NeededCategories applies the coverage rules to a profile. The rules
// are evaluated independently and their results union; a profile that
// matches no rule yields an empty set. No rule produces General — it
// exists only as an explanation fallback.
func NeededCategories(p Profile) CategorySet {
	needs := make(CategorySet)

	if p.LifeStage == StageMidCareer || p.LifeStage == StageParenting {
		needs[CategoryLife] = true
	}
	if p.LifeStage == StagePreRetirement {
		needs[CategoryProperty] = true
	}
	if p.Age >= 35 {
		needs[CategoryHealth] = true
	}
	if p.VehicleOwner {
		needs[CategoryVehicle] = true
	}

	return needs
}
