package cli

import (
	"github.com/spf13/cobra"

	"github.com/rohit-nambiar/coverscout/internal/advisor"
	"github.com/rohit-nambiar/coverscout/internal/output"
)

var recommendTop int

var recommendCmd = &cobra.Command{
	Use:   "recommend <client-id>",
	Short: "Recommend insurance products for a client",
	Long: `Recommend derives the client's profile, applies the coverage rules,
scores the catalog, and adds products that similar clients bought.

Examples:
  coverscout recommend C001
  coverscout recommend C001 --top 3
  coverscout recommend C001 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().IntVar(&recommendTop, "top", 0, "Maximum catalog products to show (default from config)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, db, err := openAdvisorDB()
	if err != nil {
		return err
	}
	defer db.Close()

	opts := advisor.Options{
		ReferenceYear: cfg.Engine.ReferenceYear,
		TopProducts:   cfg.Engine.TopProducts,
		CollabTopN:    cfg.Engine.CollabTopN,
	}
	if recommendTop > 0 {
		opts.TopProducts = recommendTop
	}

	adv, err := advisor.FromDB(ctx, db, opts)
	if err != nil {
		return err
	}

	advice, err := adv.Advise(args[0])
	if err != nil {
		return err
	}

	return output.Output(outputFmt, advice)
}
