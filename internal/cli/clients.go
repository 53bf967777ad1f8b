package cli

import (
	"github.com/spf13/cobra"

	"github.com/rohit-nambiar/coverscout/internal/advisor"
	"github.com/rohit-nambiar/coverscout/internal/output"
)

var clientsLifeStage string

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients in the loaded dataset",
	Long: `List every client with their derived age and life stage.

Examples:
  coverscout clients
  coverscout clients --life-stage Parenting
  coverscout clients -o json`,
	RunE: runClients,
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	clientsCmd.Flags().StringVar(&clientsLifeStage, "life-stage", "", "Only show clients in this life stage")
}

func runClients(cmd *cobra.Command, args []string) error {
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

	summaries := adv.ClientSummaries()
	if clientsLifeStage != "" {
		filtered := summaries[:0:0]
		for _, c := range summaries {
			if c.LifeStage == clientsLifeStage {
				filtered = append(filtered, c)
			}
		}
		summaries = filtered
	}

	return output.Output(outputFmt, summaries)
}
