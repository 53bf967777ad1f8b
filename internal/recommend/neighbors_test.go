package recommend

import (
	"errors"
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero vector", []float64{0, 0}, []float64{1, 2}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"scaled", []float64{1, 1}, []float64{5, 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.IsNaN(got) {
				t.Fatal("Cosine returned NaN")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRecommend_SoleNeighborSurfacesUnheldProduct(t *testing.T) {
	// A and B share P1; B additionally holds P9. Recommending for A
	// must surface P9 with a positive score.
	clients := []Client{
		{ID: "A", Purchases: map[string]float64{"P1": 1, "P9": 0}},
		{ID: "B", Purchases: map[string]float64{"P1": 1, "P9": 2}},
	}
	m := BuildMatrix(clients, []string{"P1", "P9"})

	recs, err := m.Recommend(0, 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d: %v", len(recs), recs)
	}
	if recs[0].Code != "P9" {
		t.Errorf("Code = %s, want P9", recs[0].Code)
	}
	if recs[0].Score <= 0 {
		t.Errorf("Score = %v, want > 0", recs[0].Score)
	}
}

func TestRecommend_NeverRecommendsHeldProducts(t *testing.T) {
	clients := []Client{
		{ID: "A", Purchases: map[string]float64{"P1": 1, "P2": 0.5, "P3": 0}},
		{ID: "B", Purchases: map[string]float64{"P1": 2, "P2": 2, "P3": 2}},
		{ID: "C", Purchases: map[string]float64{"P1": 1, "P2": 1, "P3": 1}},
	}
	m := BuildMatrix(clients, []string{"P1", "P2", "P3"})

	recs, err := m.Recommend(0, 10)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	for _, r := range recs {
		// P1 is held (value >= 1) and must never appear. P2 at 0.5 is
		// below the threshold and is fair game.
		if r.Code == "P1" {
			t.Errorf("recommended P1, which the target already holds")
		}
	}
	if len(recs) != 2 {
		t.Errorf("expected P2 and P3 as candidates, got %v", recs)
	}
}

func TestRecommend_SingleRowMatrix(t *testing.T) {
	// With no other rows there is no demand signal; unheld columns
	// must not surface with a zero score.
	clients := []Client{
		{ID: "A", Purchases: map[string]float64{"P1": 1, "P2": 0}},
	}
	m := BuildMatrix(clients, []string{"P1", "P2"})

	recs, err := m.Recommend(0, 3)
	if err != nil {
		t.Fatalf("expected no error for single-row matrix, got %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %v", recs)
	}
}

func TestRecommend_ZeroDemandColumnsDropped(t *testing.T) {
	// Neighbors exist but hold nothing in P2; only P3 carries demand.
	clients := []Client{
		{ID: "A", Purchases: map[string]float64{"P1": 1, "P2": 0, "P3": 0}},
		{ID: "B", Purchases: map[string]float64{"P1": 1, "P2": 0, "P3": 2}},
	}
	m := BuildMatrix(clients, []string{"P1", "P2", "P3"})

	recs, err := m.Recommend(0, 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %v", recs)
	}
	if recs[0].Code != "P3" || recs[0].Score != 2 {
		t.Errorf("got %+v, want P3 with score 2", recs[0])
	}
}

func TestRecommend_AbsentMatrix(t *testing.T) {
	var m *Matrix

	recs, err := m.Recommend(0, 3)
	if err != nil {
		t.Fatalf("expected no error for absent matrix, got %v", err)
	}
	if recs != nil {
		t.Errorf("expected nil result, got %v", recs)
	}
}

func TestRecommend_OutOfRangeTarget(t *testing.T) {
	clients := []Client{
		{ID: "A", Purchases: map[string]float64{"P1": 1}},
		{ID: "B", Purchases: map[string]float64{"P1": 1}},
	}
	m := BuildMatrix(clients, []string{"P1"})

	for _, target := range []int{-1, 2, 100} {
		_, err := m.Recommend(target, 3)
		if err == nil {
			t.Errorf("expected error for target %d", target)
			continue
		}
		var dataErr *DataError
		if !errors.As(err, &dataErr) {
			t.Errorf("target %d: expected *DataError, got %T", target, err)
		}
	}
}

func TestRecommend_ZeroTargetVector(t *testing.T) {
	// The target holds nothing. Every similarity is the 0/0 case and
	// resolves to 0; recommendation must still complete and rank by
	// neighbor demand.
	clients := []Client{
		{ID: "A", Purchases: map[string]float64{"P1": 0, "P2": 0}},
		{ID: "B", Purchases: map[string]float64{"P1": 3, "P2": 0}},
		{ID: "C", Purchases: map[string]float64{"P1": 0, "P2": 1}},
	}
	m := BuildMatrix(clients, []string{"P1", "P2"})

	recs, err := m.Recommend(0, 2)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Code != "P1" || recs[0].Score != 3 {
		t.Errorf("best = %+v, want P1 with score 3", recs[0])
	}
}

func TestRecommend_NeighborhoodCap(t *testing.T) {
	// Seven peers all hold P2 once. Only the five most similar count,
	// so the aggregate demand is 5, not 7.
	clients := []Client{
		{ID: "T", Purchases: map[string]float64{"P1": 1, "P2": 0}},
	}
	for i := 0; i < 7; i++ {
		clients = append(clients, Client{
			ID:        string(rune('A' + i)),
			Purchases: map[string]float64{"P1": 1, "P2": 1},
		})
	}
	m := BuildMatrix(clients, []string{"P1", "P2"})

	recs, err := m.Recommend(0, 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Score != 5 {
		t.Errorf("Score = %v, want 5 (neighborhood capped at 5)", recs[0].Score)
	}
}

func TestRecommend_TopNLimit(t *testing.T) {
	clients := []Client{
		{ID: "A", Purchases: map[string]float64{"P1": 0, "P2": 0, "P3": 0, "P4": 0}},
		{ID: "B", Purchases: map[string]float64{"P1": 4, "P2": 3, "P3": 2, "P4": 1}},
	}
	m := BuildMatrix(clients, []string{"P1", "P2", "P3", "P4"})

	recs, err := m.Recommend(0, 2)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected topN=2 results, got %d", len(recs))
	}
	if recs[0].Code != "P1" || recs[1].Code != "P2" {
		t.Errorf("got %v, want [P1 P2]", recs)
	}
}
