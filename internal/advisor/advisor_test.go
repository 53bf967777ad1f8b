package advisor

import (
	"errors"
	"testing"

	"github.com/rohit-nambiar/coverscout/internal/recommend"
)

func testCatalog() []recommend.Product {
	return []recommend.Product{
		{Code: "P1", Description: "Term Life", Types: []string{"Life"}},
		{Code: "P2", Description: "Health Plus", Types: []string{"Health"}},
		{Code: "P3", Description: "Auto Shield", Types: []string{"Vehicle"}},
		{Code: "P4", Description: "Family Bundle", Types: []string{"Life", "Health"}},
	}
}

func testClients() []recommend.Client {
	return []recommend.Client{
		{ID: "C001", BirthYear: 1980, VehicleOwner: true, Purchases: map[string]float64{"P1": 1, "P2": 0, "P3": 0}},
		{ID: "C002", BirthYear: 1982, VehicleOwner: false, Purchases: map[string]float64{"P1": 1, "P2": 2, "P3": 0}},
		{ID: "C003", BirthYear: 1990, VehicleOwner: false, Purchases: map[string]float64{"P1": 1, "P2": 0, "P3": 3}},
	}
}

func testOptions() Options {
	return Options{ReferenceYear: 2025, TopProducts: 5, CollabTopN: 3}
}

func TestAdvise(t *testing.T) {
	a := New(testClients(), testCatalog(), testOptions())

	advice, err := a.Advise("C001")
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}

	// 1980 → age 45 → Parenting, plus 35+ and vehicle owner.
	if advice.Profile.Age != 45 {
		t.Errorf("Age = %d, want 45", advice.Profile.Age)
	}
	if advice.Profile.LifeStage != recommend.StageParenting {
		t.Errorf("LifeStage = %s, want Parenting", advice.Profile.LifeStage)
	}

	want := []recommend.Category{recommend.CategoryLife, recommend.CategoryHealth, recommend.CategoryVehicle}
	if len(advice.Categories) != len(want) {
		t.Fatalf("Categories = %v, want %v", advice.Categories, want)
	}
	for i, c := range want {
		if advice.Categories[i] != c {
			t.Errorf("Categories[%d] = %s, want %s", i, advice.Categories[i], c)
		}
	}

	// P4 covers two needed categories and must rank first.
	if len(advice.Products) == 0 || advice.Products[0].Product.Code != "P4" {
		t.Errorf("top product = %v, want P4", advice.Products)
	}

	if advice.CollabStatus != CollabOK {
		t.Errorf("CollabStatus = %s, want %s", advice.CollabStatus, CollabOK)
	}
}

func TestAdvise_CollaborativeResolvesDescriptions(t *testing.T) {
	a := New(testClients(), testCatalog(), testOptions())

	advice, err := a.Advise("C001")
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}

	// C001 holds only P1; neighbors hold P2 and P3, both with demand.
	if len(advice.Collaborative) == 0 {
		t.Fatal("expected collaborative recommendations")
	}
	for _, cp := range advice.Collaborative {
		if cp.Score <= 0 {
			t.Errorf("%s has non-positive score %v", cp.Code, cp.Score)
		}
		if cp.Description == "" {
			t.Errorf("%s has no description", cp.Code)
		}
		if cp.Code == "P1" {
			t.Error("held product P1 must not be recommended")
		}
	}
}

func TestAdvise_UnknownClient(t *testing.T) {
	a := New(testClients(), testCatalog(), testOptions())

	_, err := a.Advise("C999")
	if err == nil {
		t.Fatal("expected error for unknown client")
	}
	var dataErr *recommend.DataError
	if !errors.As(err, &dataErr) {
		t.Errorf("expected *recommend.DataError, got %T", err)
	}
}

func TestAdvise_MissingBirthYear(t *testing.T) {
	clients := []recommend.Client{
		{ID: "C001", BirthYear: 0, Purchases: map[string]float64{"P1": 1}},
	}
	a := New(clients, testCatalog(), testOptions())

	_, err := a.Advise("C001")
	if err == nil {
		t.Fatal("expected error for missing birth year")
	}
	var dataErr *recommend.DataError
	if !errors.As(err, &dataErr) {
		t.Errorf("expected *recommend.DataError, got %T", err)
	}
}

func TestAdvise_NoMatrix(t *testing.T) {
	// Purchase columns share no codes with the catalog, so the matrix
	// is absent and advice degrades to rules only.
	clients := []recommend.Client{
		{ID: "C001", BirthYear: 1980, Purchases: map[string]float64{"X9": 1}},
		{ID: "C002", BirthYear: 1985, Purchases: map[string]float64{"X9": 2}},
	}
	a := New(clients, testCatalog(), testOptions())

	advice, err := a.Advise("C001")
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if advice.CollabStatus != CollabInsufficientData {
		t.Errorf("CollabStatus = %s, want %s", advice.CollabStatus, CollabInsufficientData)
	}
	if len(advice.Collaborative) != 0 {
		t.Errorf("Collaborative = %v, want empty", advice.Collaborative)
	}
	if len(advice.Products) == 0 {
		t.Error("content-based products should still be computed")
	}
}

func TestAdvise_NoNeighborDemand(t *testing.T) {
	// The matrix exists but every purchase amount is zero, so no
	// candidate clears the filter. That is the insufficient-data
	// state, not an "ok" with an empty list.
	clients := []recommend.Client{
		{ID: "C001", BirthYear: 1980, Purchases: map[string]float64{"P1": 0, "P2": 0}},
		{ID: "C002", BirthYear: 1985, Purchases: map[string]float64{"P1": 0, "P2": 0}},
	}
	a := New(clients, testCatalog(), testOptions())

	if !a.MatrixInfo().Present {
		t.Fatal("expected the matrix to be built")
	}

	advice, err := a.Advise("C001")
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if advice.CollabStatus != CollabInsufficientData {
		t.Errorf("CollabStatus = %s, want %s", advice.CollabStatus, CollabInsufficientData)
	}
	if len(advice.Collaborative) != 0 {
		t.Errorf("Collaborative = %v, want empty", advice.Collaborative)
	}
}

func TestAdvise_TopProductsCap(t *testing.T) {
	opts := testOptions()
	opts.TopProducts = 1
	a := New(testClients(), testCatalog(), opts)

	advice, err := a.Advise("C001")
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if len(advice.Products) != 1 {
		t.Errorf("got %d products, want 1", len(advice.Products))
	}
}

func TestClientSummaries(t *testing.T) {
	clients := append(testClients(), recommend.Client{ID: "C004", BirthYear: 0})
	a := New(clients, testCatalog(), testOptions())

	summaries := a.ClientSummaries()
	if len(summaries) != 4 {
		t.Fatalf("got %d summaries, want 4", len(summaries))
	}

	if summaries[0].ID != "C001" || summaries[0].Age != 45 || summaries[0].LifeStage != "Parenting" {
		t.Errorf("C001 summary = %+v", summaries[0])
	}
	if summaries[1].TotalSpend != 3 {
		t.Errorf("C002 TotalSpend = %v, want 3", summaries[1].TotalSpend)
	}

	// Missing birth year still gets a row.
	if summaries[3].ID != "C004" || summaries[3].LifeStage != "" {
		t.Errorf("C004 summary = %+v", summaries[3])
	}
}

func TestMatrixInfo(t *testing.T) {
	a := New(testClients(), testCatalog(), testOptions())

	info := a.MatrixInfo()
	if !info.Present {
		t.Fatal("expected matrix to be present")
	}
	if info.Rows != 3 {
		t.Errorf("Rows = %d, want 3", info.Rows)
	}
	if len(info.Columns) != 3 {
		t.Errorf("Columns = %v, want [P1 P2 P3]", info.Columns)
	}

	empty := New(nil, testCatalog(), testOptions())
	if empty.MatrixInfo().Present {
		t.Error("expected no matrix for empty dataset")
	}
}
