package recommend

// Matrix is the client × product purchase interaction table. Rows
// follow client-table order; columns follow catalog order. A nil
// *Matrix is the Absent state: no product code existed as a purchase
// column on the client table, and all collaborative queries degrade
// to "insufficient data".
type Matrix struct {
	Columns []string
	Rows    [][]float64
}

// BuildMatrix selects the product codes that also exist as purchase
// columns on the client table and assembles the interaction matrix.
// Returns nil when the intersection is empty — callers must check for
// that explicitly rather than treat it as an empty matrix.
func BuildMatrix(clients []Client, productCodes []string) *Matrix {
	present := make(map[string]bool)
	for _, c := range clients {
		for code := range c.Purchases {
			present[code] = true
		}
	}

	var columns []string
	for _, code := range productCodes {
		if present[code] {
			columns = append(columns, code)
		}
	}
	if len(columns) == 0 {
		return nil
	}

	rows := make([][]float64, len(clients))
	for i, c := range clients {
		row := make([]float64, len(columns))
		for j, code := range columns {
			row[j] = c.Purchases[code] // absent keys read as 0
		}
		rows[i] = row
	}

	return &Matrix{Columns: columns, Rows: rows}
}
