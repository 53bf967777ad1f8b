package recommend

import (
	"reflect"
	"testing"
)

func TestBuildMatrix(t *testing.T) {
	clients := []Client{
		{ID: "C1", Purchases: map[string]float64{"P1": 1, "P2": 0}},
		{ID: "C2", Purchases: map[string]float64{"P1": 0, "P2": 2}},
	}

	m := BuildMatrix(clients, []string{"P1", "P2", "P9"})
	if m == nil {
		t.Fatal("expected a matrix, got Absent")
	}

	// P9 is in the catalog but not on the client table.
	if !reflect.DeepEqual(m.Columns, []string{"P1", "P2"}) {
		t.Errorf("Columns = %v, want [P1 P2]", m.Columns)
	}
	if !reflect.DeepEqual(m.Rows[0], []float64{1, 0}) {
		t.Errorf("row 0 = %v, want [1 0]", m.Rows[0])
	}
	if !reflect.DeepEqual(m.Rows[1], []float64{0, 2}) {
		t.Errorf("row 1 = %v, want [0 2]", m.Rows[1])
	}
}

func TestBuildMatrix_AbsentOnEmptyIntersection(t *testing.T) {
	clients := []Client{
		{ID: "C1", Purchases: map[string]float64{"X1": 1}},
	}

	if m := BuildMatrix(clients, []string{"P1", "P2"}); m != nil {
		t.Errorf("expected Absent (nil) matrix, got %+v", m)
	}
	if m := BuildMatrix(clients, nil); m != nil {
		t.Errorf("expected Absent (nil) matrix for empty catalog, got %+v", m)
	}
}

func TestBuildMatrix_MissingCellsAreZero(t *testing.T) {
	clients := []Client{
		{ID: "C1", Purchases: map[string]float64{"P1": 3}},
		{ID: "C2", Purchases: map[string]float64{"P2": 1}},
	}

	m := BuildMatrix(clients, []string{"P1", "P2"})
	if m == nil {
		t.Fatal("expected a matrix")
	}
	if m.Rows[0][1] != 0 || m.Rows[1][0] != 0 {
		t.Errorf("missing cells should be 0: rows = %v", m.Rows)
	}
}

func TestBuildMatrix_ColumnOrderFollowsCatalog(t *testing.T) {
	clients := []Client{
		{ID: "C1", Purchases: map[string]float64{"P3": 1, "P1": 1, "P2": 1}},
	}

	m := BuildMatrix(clients, []string{"P2", "P3", "P1"})
	if m == nil {
		t.Fatal("expected a matrix")
	}
	if !reflect.DeepEqual(m.Columns, []string{"P2", "P3", "P1"}) {
		t.Errorf("Columns = %v, want catalog order [P2 P3 P1]", m.Columns)
	}
}
