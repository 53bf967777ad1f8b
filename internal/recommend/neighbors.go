package recommend

import (
	"math"
	"sort"
)

// neighborhoodSize caps how many similar clients feed the
// collaborative signal.
const neighborhoodSize = 5

// DefaultTopN is the number of collaborative recommendations returned
// when the caller does not ask for a specific count.
const DefaultTopN = 3

// ProductScore is a collaboratively recommended product code with the
// aggregate demand across the target's neighborhood.
type ProductScore struct {
	Code  string  `json:"product_code"`
	Score float64 `json:"score"`
}

// Recommend surfaces products the target client does not hold, ranked
// by how much the most similar other clients hold them. The target row
// itself never counts as a neighbor, and only products with positive
// neighborhood demand are returned. A nil matrix yields an empty
// result; an out-of-range target is a DataError.
func (m *Matrix) Recommend(target, topN int) ([]ProductScore, error) {
	if m == nil {
		return nil, nil
	}
	if target < 0 || target >= len(m.Rows) {
		return nil, dataErr("client_index", "%d out of range (matrix has %d rows)", target, len(m.Rows))
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	targetRow := m.Rows[target]

	// Rank every other row by similarity to the target and keep the
	// top of the neighborhood.
	type neighbor struct {
		index int
		sim   float64
	}
	neighbors := make([]neighbor, 0, len(m.Rows)-1)
	for i, row := range m.Rows {
		if i == target {
			continue
		}
		neighbors = append(neighbors, neighbor{index: i, sim: Cosine(targetRow, row)})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].sim > neighbors[j].sim
	})
	if len(neighbors) > neighborhoodSize {
		neighbors = neighbors[:neighborhoodSize]
	}

	// Column-wise demand across the neighborhood.
	demand := make([]float64, len(m.Columns))
	for _, n := range neighbors {
		for j, v := range m.Rows[n.index] {
			demand[j] += v
		}
	}

	// Keep products the target has not meaningfully purchased and
	// that the neighborhood actually holds. Zero aggregate demand is
	// no signal; without neighbors the result is empty.
	var scores []ProductScore
	for j, code := range m.Columns {
		if targetRow[j] >= 1 || demand[j] <= 0 {
			continue
		}
		scores = append(scores, ProductScore{Code: code, Score: demand[j]})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > topN {
		scores = scores[:topN]
	}

	return scores, nil
}

// Cosine computes the cosine similarity of two equal-length vectors as
// the dot product over the product of L2 norms. A zero vector has no
// direction; similarity against one is defined as 0 rather than NaN.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
