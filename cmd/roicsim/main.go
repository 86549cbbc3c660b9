package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/roiclab/roicsim/internal/calculation"
	"github.com/roiclab/roicsim/internal/config"
	"github.com/roiclab/roicsim/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "roicsim",
	Short: "Marketing-waste ROIC simulator",
	Long:  "Estimates how inefficient marketing spend erodes ROIC and projects the upside of removing it",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "roicsim %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Version)
		}
	},
}

var taxrateCmd = &cobra.Command{
	Use:   "taxrate [input-file]",
	Short: "Compute the effective tax rate implied by wasted marketing spend",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		rate := calculation.EffectiveTaxRate(cfg.Financials, cfg.Waste.WastePercentage)

		fmt.Fprintf(os.Stdout, "Stated tax rate:    %s\n", output.FormatPercent(cfg.Financials.TaxRate))
		fmt.Fprintf(os.Stdout, "Effective tax rate: %s\n", output.FormatPercent(rate))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(taxrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
