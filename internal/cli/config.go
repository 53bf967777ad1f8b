package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "coverscout")
	dataDir := filepath.Join(home, ".local", "share", "coverscout")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'coverscout config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Import a dataset:")
	fmt.Println("       coverscout import --clients clients.csv --products products.csv")
	fmt.Println("  2. Get recommendations:")
	fmt.Println("       coverscout recommend C001")
	fmt.Println()
	fmt.Println("To import from Google Sheets instead, set spreadsheet_id in the")
	fmt.Println("[sheets] section and run 'coverscout import --source sheets'.")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'coverscout config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# CoverScout Configuration

[database]
path = "~/.local/share/coverscout/coverscout.db"

[engine]
reference_year = 2025  # stands in for "today" when deriving client ages
top_products = 5       # max catalog products per recommendation
collab_top_n = 3       # max similar-client suggestions per recommendation

[sheets]
# Optional Google Sheets import source. Leave spreadsheet_id empty to
# use CSV files only.
credentials_path = "~/.config/coverscout/credentials.json"
token_path = "~/.config/coverscout/token.json"
spreadsheet_id = ""
clients_range = "Clients!A:Z"
products_range = "Products!A:C"

[mcp]
enabled = true
transport = "stdio"
`
