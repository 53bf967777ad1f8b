// Package sheets reads the client and product tables from a Google
// Sheets spreadsheet, for teams that maintain the book of business in
// a shared sheet rather than CSV exports.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rohit-nambiar/coverscout/internal/recommend"
	"github.com/rohit-nambiar/coverscout/internal/source"
)

// Provider implements the source.Provider interface for Google Sheets
type Provider struct {
	credPath      string
	tokenPath     string
	spreadsheetID string
	clientsRange  string
	productsRange string
	service       *sheets.Service
}

// New creates a new Sheets provider
func New(credPath, tokenPath, spreadsheetID, clientsRange, productsRange string) *Provider {
	return &Provider{
		credPath:      credPath,
		tokenPath:     tokenPath,
		spreadsheetID: spreadsheetID,
		clientsRange:  clientsRange,
		productsRange: productsRange,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "sheets"
}

// IsAuthenticated checks if a valid token exists
func (p *Provider) IsAuthenticated() bool {
	_, err := loadToken(p.tokenPath)
	return err == nil
}

// Authenticate performs OAuth authentication and builds the service
func (p *Provider) Authenticate(ctx context.Context) error {
	config, err := loadCredentials(p.credPath)
	if err != nil {
		return err
	}

	client, err := getClient(ctx, config, p.tokenPath)
	if err != nil {
		return fmt.Errorf("failed to get OAuth client: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("failed to create Sheets service: %w", err)
	}

	p.service = service
	return nil
}

// FetchClients retrieves and parses the client table
func (p *Provider) FetchClients(ctx context.Context) (*source.ClientTable, error) {
	records, err := p.fetchRange(ctx, p.clientsRange)
	if err != nil {
		return nil, err
	}
	return source.ParseClientTable(records)
}

// FetchProducts retrieves and parses the product catalog
func (p *Provider) FetchProducts(ctx context.Context) ([]recommend.Product, error) {
	records, err := p.fetchRange(ctx, p.productsRange)
	if err != nil {
		return nil, err
	}
	return source.ParseProductTable(records)
}

// fetchRange pulls one A1-notation range as a string table
func (p *Provider) fetchRange(ctx context.Context, readRange string) ([][]string, error) {
	if p.service == nil {
		if err := p.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := p.service.Spreadsheets.Values.Get(p.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	records := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, fmt.Sprint(v))
		}
		records = append(records, cells)
	}
	return records, nil
}
