package database

import "time"

// ImportBatch records one dataset import
type ImportBatch struct {
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	ClientsLoaded   int       `json:"clients_loaded"`
	ProductsLoaded  int       `json:"products_loaded"`
	PurchaseColumns int       `json:"purchase_columns"`
	ImportedAt      time.Time `json:"imported_at"`
}

// DatasetInfo summarizes the currently loaded dataset
type DatasetInfo struct {
	Clients         int        `json:"clients"`
	Products        int        `json:"products"`
	PurchaseColumns int        `json:"purchase_columns"`
	Source          string     `json:"source,omitempty"`
	ImportedAt      *time.Time `json:"imported_at,omitempty"`
}
