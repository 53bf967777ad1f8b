// Package csvfile reads the client and product tables from local CSV
// files. It is the default source provider.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rohit-nambiar/coverscout/internal/recommend"
	"github.com/rohit-nambiar/coverscout/internal/source"
)

// Provider implements source.Provider over two CSV files
type Provider struct {
	clientsPath  string
	productsPath string
}

// New creates a CSV provider for the given file paths
func New(clientsPath, productsPath string) *Provider {
	return &Provider{
		clientsPath:  clientsPath,
		productsPath: productsPath,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "csv"
}

// FetchClients reads and parses the client table
func (p *Provider) FetchClients(ctx context.Context) (*source.ClientTable, error) {
	records, err := readCSV(p.clientsPath)
	if err != nil {
		return nil, err
	}
	return source.ParseClientTable(records)
}

// FetchProducts reads and parses the product catalog
func (p *Provider) FetchProducts(ctx context.Context) ([]recommend.Product, error) {
	records, err := readCSV(p.productsPath)
	if err != nil {
		return nil, err
	}
	return source.ParseProductTable(records)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; the parser pads them

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}
