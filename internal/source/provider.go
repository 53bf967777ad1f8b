package source

import (
	"context"

	"github.com/rohit-nambiar/coverscout/internal/recommend"
)

// Provider supplies the two input tables from some external store.
// The core never reads files or networks itself; it only sees the
// typed tables a provider hands back.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// FetchClients retrieves and parses the client table
	FetchClients(ctx context.Context) (*ClientTable, error)

	// FetchProducts retrieves and parses the product catalog
	FetchProducts(ctx context.Context) ([]recommend.Product, error)
}

// ClientTable is the parsed client table plus what the parser learned
// about its shape.
type ClientTable struct {
	Clients []recommend.Client
	// PurchaseColumns lists the headers recognized as numeric
	// purchase-amount columns, in table order.
	PurchaseColumns []string
	// HasVehicleFlag reports whether the table carried a
	// vehicle-ownership column at all.
	HasVehicleFlag bool
}
