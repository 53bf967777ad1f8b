package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohit-nambiar/coverscout/internal/output"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the insurance product catalog",
	RunE:  runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, db, err := openAdvisorDB()
	if err != nil {
		return err
	}
	defer db.Close()

	products, err := db.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	return output.Output(outputFmt, products)
}
