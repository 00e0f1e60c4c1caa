package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/buildinfo"
	"github.com/spendlens-dev/spendlens/internal/config"
	"github.com/spendlens-dev/spendlens/internal/logger"
)

// app holds state shared by all subcommands, initialized once by the root
// command's PersistentPreRunE rather than at import time.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}
	var cfgPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "spendlens",
		Short:   "Spending analytics for bank-card statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cfgPath, verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "spendlens.yaml", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newHomeCommand(a),
		newReportCommand(a),
		newCashbackCommand(a),
		newRoundupCommand(a),
		newSearchCommand(a),
	)

	return rootCmd
}

func (a *app) init(cfgPath string, verbose bool) error {
	// A .env file is optional; it only supplies market API keys.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(verbose)

	// Monetary values serialize as JSON numbers, matching the report shape
	// downstream consumers expect.
	decimal.MarshalJSONWithoutQuotes = true
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
