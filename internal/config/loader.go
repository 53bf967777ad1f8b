package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'coverscout config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads config or exits with error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	c.Sheets.CredentialsPath, err = expandPath(c.Sheets.CredentialsPath)
	if err != nil {
		return err
	}

	c.Sheets.TokenPath, err = expandPath(c.Sheets.TokenPath)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Engine validation
	if c.Engine.ReferenceYear < 1900 || c.Engine.ReferenceYear > 2200 {
		errs = append(errs, fmt.Errorf("engine.reference_year must be between 1900 and 2200, got %d", c.Engine.ReferenceYear))
	}
	if c.Engine.TopProducts < 1 {
		errs = append(errs, errors.New("engine.top_products must be at least 1"))
	}
	if c.Engine.CollabTopN < 1 {
		errs = append(errs, errors.New("engine.collab_top_n must be at least 1"))
	}

	// Sheets validation: credentials only matter once a spreadsheet is configured
	if c.Sheets.SpreadsheetID != "" {
		if c.Sheets.CredentialsPath == "" {
			errs = append(errs, errors.New("sheets.credentials_path is required when sheets.spreadsheet_id is set"))
		}
		if c.Sheets.TokenPath == "" {
			errs = append(errs, errors.New("sheets.token_path is required when sheets.spreadsheet_id is set"))
		}
		if c.Sheets.ClientsRange == "" || c.Sheets.ProductsRange == "" {
			errs = append(errs, errors.New("sheets.clients_range and sheets.products_range are required when sheets.spreadsheet_id is set"))
		}
	}

	// MCP validation
	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got '%s'", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for database and tokens
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Database.Path),
		filepath.Dir(c.Sheets.TokenPath),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
