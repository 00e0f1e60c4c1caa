package commands

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/importer"
	"github.com/spendlens-dev/spendlens/internal/model"
	"github.com/spendlens-dev/spendlens/internal/reports"
)

// searchRow is the outward projection of a matching record. The card
// identifier is masked; raw values stay inside the process.
type searchRow struct {
	Date           string              `json:"date,omitempty"`
	Amount         decimal.NullDecimal `json:"amount"`
	CardLastDigits string              `json:"card_last_digits,omitempty"`
	Category       string              `json:"category,omitempty"`
	Description    string              `json:"description,omitempty"`
}

func newSearchCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "search <statement> <query>",
		Short: "Free-text search over descriptions and categories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			matches := reports.SimpleSearch(args[1], txns)
			a.log.Info().Str("query", args[1]).Int("matches", len(matches)).Msg("search done")

			rows := make([]searchRow, 0, len(matches))
			for _, t := range matches {
				row := searchRow{
					Amount:         t.Amount,
					CardLastDigits: model.MaskCard(t.CardLastDigits),
					Category:       t.Category,
					Description:    t.Description,
				}
				if t.DateValid {
					row.Date = t.Date.Format(time.DateOnly)
				}
				rows = append(rows, row)
			}

			if out != "" {
				if err := reports.WriteJSON(out, rows); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "also write the matches to a JSON file")

	return cmd
}
