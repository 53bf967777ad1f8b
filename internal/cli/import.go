package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohit-nambiar/coverscout/internal/config"
	"github.com/rohit-nambiar/coverscout/internal/database"
	"github.com/rohit-nambiar/coverscout/internal/source"
	"github.com/rohit-nambiar/coverscout/internal/source/csvfile"
	"github.com/rohit-nambiar/coverscout/internal/source/sheets"
)

var (
	importClientsPath  string
	importProductsPath string
	importSource       string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a client and product dataset",
	Long: `Import loads the client table and product catalog into the local
database, replacing any previously imported dataset.

Examples:
  coverscout import --clients clients.csv --products products.csv
  coverscout import --source sheets    # read from the configured spreadsheet`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importClientsPath, "clients", "", "Path to the clients CSV file")
	importCmd.Flags().StringVar(&importProductsPath, "products", "", "Path to the products CSV file")
	importCmd.Flags().StringVar(&importSource, "source", "csv", "Dataset source (csv, sheets)")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Printf("Importing dataset from %s...\n", provider.Name())

	table, err := provider.FetchClients(ctx)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	products, err := provider.FetchProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	fmt.Printf("Detected %d purchase columns: %v\n", len(table.PurchaseColumns), table.PurchaseColumns)
	if len(table.PurchaseColumns) == 0 {
		fmt.Println("Warning: no purchase columns found; similar-client suggestions will be unavailable.")
	}
	if !table.HasVehicleFlag {
		fmt.Println("Warning: no VehicleOwner column found; vehicle coverage rules will not fire.")
	}

	batch, err := db.ReplaceDataset(ctx, table.Clients, table.HasVehicleFlag, products, provider.Name())
	if err != nil {
		return fmt.Errorf("failed to store dataset: %w", err)
	}

	fmt.Println()
	fmt.Printf("Imported %d clients and %d products (batch %s)\n",
		batch.ClientsLoaded, batch.ProductsLoaded, batch.ID)

	return nil
}

func buildProvider(cfg *config.Config) (source.Provider, error) {
	switch importSource {
	case "csv", "":
		if importClientsPath == "" || importProductsPath == "" {
			return nil, fmt.Errorf("--clients and --products are required for the csv source")
		}
		return csvfile.New(importClientsPath, importProductsPath), nil
	case "sheets":
		if cfg.Sheets.SpreadsheetID == "" {
			return nil, fmt.Errorf("sheets.spreadsheet_id is not configured; run 'coverscout config show'")
		}
		return sheets.New(
			cfg.Sheets.CredentialsPath,
			cfg.Sheets.TokenPath,
			cfg.Sheets.SpreadsheetID,
			cfg.Sheets.ClientsRange,
			cfg.Sheets.ProductsRange,
		), nil
	default:
		return nil, fmt.Errorf("unknown source: %s (expected csv or sheets)", importSource)
	}
}

// openAdvisorDB is shared by the read-only commands: load config, open
// the database, and hand both back.
func openAdvisorDB() (*config.Config, *database.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return cfg, db, nil
}
