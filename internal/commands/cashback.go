package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/importer"
	"github.com/spendlens-dev/spendlens/internal/reports"
)

func newCashbackCommand(a *app) *cobra.Command {
	var year, month int
	var out string

	cmd := &cobra.Command{
		Use:   "cashback <statement>",
		Short: "Estimated 5% cashback per category for one month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			estimate := reports.CashbackCategories(txns, year, month)
			a.log.Info().Int("year", year).Int("month", month).
				Int("categories", len(estimate)).Msg("cashback estimate built")

			if out != "" {
				if err := reports.WriteJSON(out, estimate); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), estimate)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year to analyze (required)")
	cmd.Flags().IntVar(&month, "month", 0, "month to analyze, 1-12 (required)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	cmd.Flags().StringVar(&out, "out", "", "also write the estimate to a JSON file")

	return cmd
}
