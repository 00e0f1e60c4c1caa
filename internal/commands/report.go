package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/importer"
	"github.com/spendlens-dev/spendlens/internal/model"
	"github.com/spendlens-dev/spendlens/internal/reports"
)

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending reports over the trailing three months",
	}

	cmd.AddCommand(
		newCategoryReportCommand(a),
		newWeekdayReportCommand(a),
		newWorkdayReportCommand(a),
	)

	return cmd
}

func newCategoryReportCommand(a *app) *cobra.Command {
	var dateStr, out string

	cmd := &cobra.Command{
		Use:   "category <statement> <category>",
		Short: "Monthly spend for one category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := reportAnchor(dateStr)
			if err != nil {
				return err
			}
			txns, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			rows := reports.SpendingByCategory(txns, args[1], anchor)
			a.log.Info().Str("category", args[1]).Int("rows", len(rows)).Msg("category report built")

			if out != "" {
				header, table := reports.CategorySpendTable(rows)
				if err := writeRows(out, rows, header, table); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), rows)
		},
	}

	addReportFlags(cmd, &dateStr, &out)
	return cmd
}

func newWeekdayReportCommand(a *app) *cobra.Command {
	var dateStr, out string

	cmd := &cobra.Command{
		Use:   "weekday <statement>",
		Short: "Average spend per day of the week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := reportAnchor(dateStr)
			if err != nil {
				return err
			}
			txns, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			rows := reports.SpendingByWeekday(txns, anchor)
			a.log.Info().Int("rows", len(rows)).Msg("weekday report built")

			if out != "" {
				header, table := reports.WeekdaySpendTable(rows)
				if err := writeRows(out, rows, header, table); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), rows)
		},
	}

	addReportFlags(cmd, &dateStr, &out)
	return cmd
}

func newWorkdayReportCommand(a *app) *cobra.Command {
	var dateStr, out string

	cmd := &cobra.Command{
		Use:   "workday <statement>",
		Short: "Average spend on workdays versus weekends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := reportAnchor(dateStr)
			if err != nil {
				return err
			}
			txns, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			rows := reports.SpendingByWorkday(txns, anchor)
			a.log.Info().Int("rows", len(rows)).Msg("workday report built")

			if out != "" {
				header, table := reports.DayTypeSpendTable(rows)
				if err := writeRows(out, rows, header, table); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), rows)
		},
	}

	addReportFlags(cmd, &dateStr, &out)
	return cmd
}

func addReportFlags(cmd *cobra.Command, dateStr, out *string) {
	cmd.Flags().StringVar(dateStr, "date", "", "anchor date for the window (default: now)")
	cmd.Flags().StringVar(out, "out", "", "write the report to a file (.csv or .json)")
}

func reportAnchor(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Now(), nil
	}
	return model.ParseDate(dateStr)
}

// writeRows is the explicit report-then-write composition: a JSON document
// or, for .csv paths, the tabular rendering built by the caller.
func writeRows(out string, rows any, header []string, table [][]string) error {
	if strings.HasSuffix(strings.ToLower(out), ".csv") {
		return reports.WriteCSV(out, header, table)
	}
	return reports.WriteJSON(out, rows)
}
