package recommend

import (
	"reflect"
	"testing"
)

func TestNeededCategories(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    []Category
	}{
		{
			name:    "parenting vehicle owner over 35",
			profile: Profile{Age: 45, LifeStage: StageParenting, VehicleOwner: true},
			want:    []Category{CategoryLife, CategoryHealth, CategoryVehicle},
		},
		{
			name:    "early career without vehicle matches nothing",
			profile: Profile{Age: 25, LifeStage: StageEarlyCareer},
			want:    []Category{},
		},
		{
			name:    "mid career under 35",
			profile: Profile{Age: 32, LifeStage: StageMidCareer},
			want:    []Category{CategoryLife},
		},
		{
			name:    "mid career at health threshold",
			profile: Profile{Age: 35, LifeStage: StageMidCareer},
			want:    []Category{CategoryLife, CategoryHealth},
		},
		{
			name:    "pre-retirement gets property and health",
			profile: Profile{Age: 60, LifeStage: StagePreRetirement},
			want:    []Category{CategoryHealth, CategoryProperty},
		},
		{
			name:    "early career vehicle owner",
			profile: Profile{Age: 25, LifeStage: StageEarlyCareer, VehicleOwner: true},
			want:    []Category{CategoryVehicle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeededCategories(tt.profile).Sorted()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NeededCategories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeededCategories_Pure(t *testing.T) {
	p := Profile{Age: 45, LifeStage: StageParenting, VehicleOwner: true}

	first := NeededCategories(p)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(NeededCategories(p), first) {
			t.Fatal("NeededCategories is not deterministic for a fixed profile")
		}
	}
}

func TestCategorySet_Sorted(t *testing.T) {
	// Insertion order must not leak into output order.
	s := CategorySet{CategoryProperty: true, CategoryLife: true, CategoryHealth: true}

	want := []Category{CategoryLife, CategoryHealth, CategoryProperty}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}

func TestExplain_Fallback(t *testing.T) {
	if Explain(Category("Travel")) != Explanations[CategoryGeneral] {
		t.Error("unknown category should fall back to the General explanation")
	}
	if Explain(CategoryLife) == Explanations[CategoryGeneral] {
		t.Error("known category should use its own explanation")
	}
}
