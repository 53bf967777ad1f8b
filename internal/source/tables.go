package source

import (
	"strconv"
	"strings"

	"github.com/rohit-nambiar/coverscout/internal/recommend"
)

// Expected column headers. Matching is case-insensitive and ignores
// surrounding whitespace.
const (
	colClientID     = "clientid"
	colBirthYear    = "birth_year"
	colVehicleOwner = "vehicleowner"

	colProductCode   = "productcode"
	colDescription   = "productdescription"
	colInsuranceType = "insurancetype"
)

// ParseClientTable converts a raw header+rows table into typed
// clients. ClientID and birth_year are required headers; VehicleOwner
// is optional. Every remaining column whose cells are all numeric (or
// empty) becomes a purchase-amount column keyed by its header, with
// empty cells read as 0. Columns with any non-numeric cell are
// ignored.
func ParseClientTable(records [][]string) (*ClientTable, error) {
	if len(records) == 0 {
		return nil, &recommend.DataError{Field: "clients", Reason: "table is empty"}
	}

	header := records[0]
	rows := records[1:]

	idCol, birthCol, vehicleCol := -1, -1, -1
	for i, h := range header {
		switch normalizeHeader(h) {
		case colClientID:
			idCol = i
		case colBirthYear:
			birthCol = i
		case colVehicleOwner:
			vehicleCol = i
		}
	}
	if idCol == -1 {
		return nil, &recommend.DataError{Field: "clients", Reason: "missing required column ClientID"}
	}
	if birthCol == -1 {
		return nil, &recommend.DataError{Field: "clients", Reason: "missing required column birth_year"}
	}

	purchaseCols := detectPurchaseColumns(header, rows, idCol, birthCol, vehicleCol)

	table := &ClientTable{
		PurchaseColumns: make([]string, 0, len(purchaseCols)),
		HasVehicleFlag:  vehicleCol != -1,
	}
	for _, pc := range purchaseCols {
		table.PurchaseColumns = append(table.PurchaseColumns, strings.TrimSpace(header[pc]))
	}

	for _, row := range rows {
		c := recommend.Client{
			ID:        cell(row, idCol),
			Purchases: make(map[string]float64, len(purchaseCols)),
		}
		if c.ID == "" {
			continue // blank row
		}

		// An unparseable birth year stays 0; the profiler reports the
		// DataError when this client is actually queried.
		if year, err := strconv.Atoi(cell(row, birthCol)); err == nil {
			c.BirthYear = year
		}

		if vehicleCol != -1 {
			c.VehicleOwner = parseFlag(cell(row, vehicleCol))
		}

		for _, pc := range purchaseCols {
			code := strings.TrimSpace(header[pc])
			value := cell(row, pc)
			if value == "" {
				c.Purchases[code] = 0
				continue
			}
			amount, _ := strconv.ParseFloat(value, 64)
			c.Purchases[code] = amount
		}

		table.Clients = append(table.Clients, c)
	}

	return table, nil
}

// ParseProductTable converts a raw header+rows table into the product
// catalog. ProductCode and ProductDescription are required;
// InsuranceType is the "|"-delimited tag column.
func ParseProductTable(records [][]string) ([]recommend.Product, error) {
	if len(records) == 0 {
		return nil, &recommend.DataError{Field: "products", Reason: "table is empty"}
	}

	header := records[0]
	rows := records[1:]

	codeCol, descCol, typeCol := -1, -1, -1
	for i, h := range header {
		switch normalizeHeader(h) {
		case colProductCode:
			codeCol = i
		case colDescription:
			descCol = i
		case colInsuranceType:
			typeCol = i
		}
	}
	if codeCol == -1 {
		return nil, &recommend.DataError{Field: "products", Reason: "missing required column ProductCode"}
	}
	if descCol == -1 {
		return nil, &recommend.DataError{Field: "products", Reason: "missing required column ProductDescription"}
	}

	var products []recommend.Product
	for _, row := range rows {
		p := recommend.Product{
			Code:        cell(row, codeCol),
			Description: cell(row, descCol),
		}
		if p.Code == "" {
			continue
		}
		if typeCol != -1 {
			p.Types = recommend.ParseTypes(cell(row, typeCol))
		}
		products = append(products, p)
	}

	return products, nil
}

// detectPurchaseColumns returns the indexes of columns whose cells are
// entirely numeric or empty, excluding the reserved columns.
func detectPurchaseColumns(header []string, rows [][]string, reserved ...int) []int {
	isReserved := make(map[int]bool, len(reserved))
	for _, r := range reserved {
		isReserved[r] = true
	}

	var cols []int
	for i := range header {
		if isReserved[i] || strings.TrimSpace(header[i]) == "" {
			continue
		}
		if columnIsNumeric(rows, i) {
			cols = append(cols, i)
		}
	}
	return cols
}

func columnIsNumeric(rows [][]string, col int) bool {
	for _, row := range rows {
		v := cell(row, col)
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}

// cell returns the trimmed value at col, or "" for a ragged row
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// parseFlag interprets the vehicle-ownership cell. The flag is "Yes"
// in the reference data; common boolean spellings are accepted and
// anything else (including blank) means no.
func parseFlag(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}
