package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rohit-nambiar/coverscout/internal/recommend"
)

// ReplaceDataset atomically swaps the stored client and product tables
// for a freshly imported pair. Row order of both slices is preserved
// so the purchase matrix can be rebuilt position-for-position.
// hasVehicleFlag records whether the client table carried a
// vehicle-ownership column at all; without it the flag is stored as
// NULL and reads back as false.
func (db *DB) ReplaceDataset(ctx context.Context, clients []recommend.Client, hasVehicleFlag bool, products []recommend.Product, source string) (*ImportBatch, error) {
	batch := &ImportBatch{
		ID:             uuid.New().String(),
		Source:         source,
		ClientsLoaded:  len(clients),
		ProductsLoaded: len(products),
		ImportedAt:     time.Now(),
	}

	columns := make(map[string]bool)

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"purchases", "clients", "products"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		for i, c := range clients {
			var owner sql.NullBool
			if hasVehicleFlag {
				owner = sql.NullBool{Bool: c.VehicleOwner, Valid: true}
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO clients (id, birth_year, vehicle_owner, row_idx)
				VALUES (?, ?, ?, ?)
			`, c.ID, c.BirthYear, owner, i)
			if err != nil {
				return fmt.Errorf("failed to insert client %s: %w", c.ID, err)
			}

			for code, amount := range c.Purchases {
				columns[code] = true
				_, err := tx.ExecContext(ctx, `
					INSERT INTO purchases (client_id, product_code, amount)
					VALUES (?, ?, ?)
				`, c.ID, code, amount)
				if err != nil {
					return fmt.Errorf("failed to insert purchase %s/%s: %w", c.ID, code, err)
				}
			}
		}

		for i, p := range products {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO products (code, description, insurance_types, row_idx)
				VALUES (?, ?, ?, ?)
			`, p.Code, p.Description, strings.Join(p.Types, "|"), i)
			if err != nil {
				return fmt.Errorf("failed to insert product %s: %w", p.Code, err)
			}
		}

		batch.PurchaseColumns = len(columns)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO import_batches (id, source, clients_loaded, products_loaded, purchase_columns, imported_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, batch.ID, batch.Source, batch.ClientsLoaded, batch.ProductsLoaded, batch.PurchaseColumns, batch.ImportedAt)
		if err != nil {
			return fmt.Errorf("failed to record import: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return batch, nil
}

// LoadClients returns all clients in their original table order, with
// purchase-amount maps attached.
func (db *DB) LoadClients(ctx context.Context) ([]recommend.Client, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, birth_year, vehicle_owner
		FROM clients ORDER BY row_idx
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []recommend.Client
	for rows.Next() {
		var c recommend.Client
		var owner sql.NullBool
		if err := rows.Scan(&c.ID, &c.BirthYear, &owner); err != nil {
			return nil, err
		}
		c.VehicleOwner = owner.Valid && owner.Bool
		c.Purchases = make(map[string]float64)
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.attachPurchases(ctx, clients); err != nil {
		return nil, err
	}

	return clients, nil
}

// attachPurchases fills each client's purchase map in one pass
func (db *DB) attachPurchases(ctx context.Context, clients []recommend.Client) error {
	byID := make(map[string]int, len(clients))
	for i, c := range clients {
		byID[c.ID] = i
	}

	rows, err := db.QueryContext(ctx, `SELECT client_id, product_code, amount FROM purchases`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var clientID, code string
		var amount float64
		if err := rows.Scan(&clientID, &code, &amount); err != nil {
			return err
		}
		if i, ok := byID[clientID]; ok {
			clients[i].Purchases[code] = amount
		}
	}
	return rows.Err()
}

// GetClient retrieves a client by ID along with its table row index.
// Returns nil when no such client exists.
func (db *DB) GetClient(ctx context.Context, id string) (*recommend.Client, int, error) {
	var c recommend.Client
	var owner sql.NullBool
	var rowIdx int

	err := db.QueryRowContext(ctx, `
		SELECT id, birth_year, vehicle_owner, row_idx
		FROM clients WHERE id = ?
	`, id).Scan(&c.ID, &c.BirthYear, &owner, &rowIdx)
	if err == sql.ErrNoRows {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	c.VehicleOwner = owner.Valid && owner.Bool
	c.Purchases = make(map[string]float64)

	rows, err := db.QueryContext(ctx, `SELECT product_code, amount FROM purchases WHERE client_id = ?`, id)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		var amount float64
		if err := rows.Scan(&code, &amount); err != nil {
			return nil, 0, err
		}
		c.Purchases[code] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return &c, rowIdx, nil
}

// LoadProducts returns the product catalog in its original order
func (db *DB) LoadProducts(ctx context.Context) ([]recommend.Product, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT code, description, insurance_types
		FROM products ORDER BY row_idx
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []recommend.Product
	for rows.Next() {
		var p recommend.Product
		var rawTypes string
		if err := rows.Scan(&p.Code, &p.Description, &rawTypes); err != nil {
			return nil, err
		}
		p.Types = recommend.ParseTypes(rawTypes)
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetDatasetInfo summarizes the stored dataset and its last import
func (db *DB) GetDatasetInfo(ctx context.Context) (*DatasetInfo, error) {
	info := &DatasetInfo{}

	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&info.Clients); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&info.Products); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT product_code) FROM purchases`).Scan(&info.PurchaseColumns); err != nil {
		return nil, err
	}

	var source string
	var importedAt time.Time
	err := db.QueryRowContext(ctx, `
		SELECT source, imported_at FROM import_batches
		ORDER BY imported_at DESC LIMIT 1
	`).Scan(&source, &importedAt)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if err == nil {
		info.Source = source
		info.ImportedAt = &importedAt
	}

	return info, nil
}
