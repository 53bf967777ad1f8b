package cli

import (
	"github.com/spf13/cobra"

	"github.com/rohit-nambiar/coverscout/internal/advisor"
	"github.com/rohit-nambiar/coverscout/internal/output"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Inspect the purchase interaction matrix",
	Long: `Matrix shows whether the client-by-product purchase matrix could be
built from the loaded dataset. Similar-client suggestions need at least
one product code to appear as a purchase column on the client table.`,
	RunE: runMatrix,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset summary",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(statsCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, db, err := openAdvisorDB()
	if err != nil {
		return err
	}
	defer db.Close()

	adv, err := advisor.FromDB(ctx, db, advisor.Options{
		ReferenceYear: cfg.Engine.ReferenceYear,
		TopProducts:   cfg.Engine.TopProducts,
		CollabTopN:    cfg.Engine.CollabTopN,
	})
	if err != nil {
		return err
	}

	return output.Output(outputFmt, adv.MatrixInfo())
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, db, err := openAdvisorDB()
	if err != nil {
		return err
	}
	defer db.Close()

	info, err := db.GetDatasetInfo(ctx)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, info)
}
