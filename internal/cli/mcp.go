package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rohit-nambiar/coverscout/internal/advisor"
	"github.com/rohit-nambiar/coverscout/internal/config"
	"github.com/rohit-nambiar/coverscout/internal/database"
	"github.com/rohit-nambiar/coverscout/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This allows AI assistants like Claude Desktop to request recommendations
for your clients.

Add to Claude Desktop config (~/Library/Application Support/Claude/claude_desktop_config.json):

{
  "mcpServers": {
    "coverscout": {
      "command": "/path/to/coverscout",
      "args": ["mcp"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Check if MCP is enabled
	if !cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config")
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Load the dataset once; the server answers from this snapshot
	adv, err := advisor.FromDB(cmd.Context(), db, advisor.Options{
		ReferenceYear: cfg.Engine.ReferenceYear,
		TopProducts:   cfg.Engine.TopProducts,
		CollabTopN:    cfg.Engine.CollabTopN,
	})
	if err != nil {
		return err
	}

	// Create MCP server
	server := mcp.New(adv, db, cfg)

	// Handle interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	// Run server
	return server.Start(ctx)
}
