package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/importer"
	"github.com/spendlens-dev/spendlens/internal/reports"
)

type roundupResult struct {
	Month string          `json:"month"`
	Limit decimal.Decimal `json:"limit"`
	Total decimal.Decimal `json:"total"`
}

func newRoundupCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "roundup <statement> <month>",
		Short: "Round-up savings total for one month (YYYY-MM)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			if limit == 0 {
				limit = a.cfg.Reports.RoundUpLimit
			}
			step := decimal.NewFromInt(int64(limit))
			total := reports.InvestmentBank(args[1], txns, step)
			a.log.Info().Str("month", args[1]).Int("limit", limit).
				Str("total", total.String()).Msg("round-up total computed")

			return printJSON(cmd.OutOrStdout(), roundupResult{
				Month: args[1],
				Limit: step,
				Total: total,
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "round-up step (default from config)")

	return cmd
}
