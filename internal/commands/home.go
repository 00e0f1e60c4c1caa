package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/dashboard"
	"github.com/spendlens-dev/spendlens/internal/importer"
	"github.com/spendlens-dev/spendlens/internal/market"
	"github.com/spendlens-dev/spendlens/internal/model"
	"github.com/spendlens-dev/spendlens/internal/reports"
)

func newHomeCommand(a *app) *cobra.Command {
	var dateStr string
	var out string

	cmd := &cobra.Command{
		Use:   "home <statement>",
		Short: "Month-to-date overview: cards, top transactions, market quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if dateStr != "" {
				parsed, err := model.ParseDate(dateStr)
				if err != nil {
					return err
				}
				at = parsed
			}

			txns, err := importer.Load(args[0])
			if err != nil {
				return err
			}
			a.log.Info().Str("file", args[0]).Int("transactions", len(txns)).Msg("statement loaded")

			ctx := cmd.Context()
			rates := market.NewCurrencySource(a.cfg.Market, a.log).Quotes(ctx)
			stocks := market.NewStockSource(a.cfg.Market, a.log).Quotes(ctx)

			doc := dashboard.Build(txns, at, a.cfg.Reports.TopTransactions, rates, stocks)

			if out != "" {
				if err := reports.WriteJSON(out, doc); err != nil {
					return err
				}
				a.log.Info().Str("path", out).Msg("report written")
			}
			return printJSON(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "anchor date (default: now)")
	cmd.Flags().StringVar(&out, "out", "", "also write the report to a JSON file")

	return cmd
}
