package config

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Engine   EngineConfig   `toml:"engine"`
	Sheets   SheetsConfig   `toml:"sheets"`
	MCP      MCPConfig      `toml:"mcp"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// EngineConfig contains recommendation engine tunables
type EngineConfig struct {
	// ReferenceYear stands in for "today" when deriving ages, so runs
	// are reproducible against a fixed dataset.
	ReferenceYear int `toml:"reference_year"`
	// TopProducts caps the content-based product list per client.
	TopProducts int `toml:"top_products"`
	// CollabTopN caps the collaborative ("clients like you bought")
	// product list per client.
	CollabTopN int `toml:"collab_top_n"`
}

// SheetsConfig contains Google Sheets source settings
type SheetsConfig struct {
	CredentialsPath string `toml:"credentials_path"`
	TokenPath       string `toml:"token_path"`
	SpreadsheetID   string `toml:"spreadsheet_id"`
	ClientsRange    string `toml:"clients_range"`
	ProductsRange   string `toml:"products_range"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/coverscout/coverscout.db",
		},
		Engine: EngineConfig{
			ReferenceYear: 2025,
			TopProducts:   5,
			CollabTopN:    3,
		},
		Sheets: SheetsConfig{
			CredentialsPath: "~/.config/coverscout/credentials.json",
			TokenPath:       "~/.config/coverscout/token.json",
			ClientsRange:    "Clients!A:Z",
			ProductsRange:   "Products!A:C",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
