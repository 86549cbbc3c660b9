package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roiclab/roicsim/internal/calculation"
	"github.com/roiclab/roicsim/internal/config"
	"github.com/roiclab/roicsim/internal/output"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep [input-file]",
	Short: "Sweep waste removal from 0 to 100% and chart the ROIC response",
	Long: `Sweep the fraction of wasted marketing spend removed from 0 to 100% and
recompute ROIC at each point, once per effectiveness scenario.

Examples:
  roicsim sweep scenario.yaml
  roicsim sweep scenario.yaml --effectiveness 0.25,0.50,0.75 --points 50
  roicsim sweep scenario.yaml --format csv > sweep.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runSweep,
}

var (
	sweepEffectiveness []string
	sweepPoints        int
	sweepFormat        string
)

func init() {
	sweepCmd.Flags().StringSliceVar(&sweepEffectiveness, "effectiveness", nil, "Effectiveness levels to compare (fractions in [0,1])")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 0, "Number of removal points (default from config)")
	sweepCmd.Flags().StringVar(&sweepFormat, "format", "table", "Output format (table, csv, json)")

	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	levels := cfg.Simulation.EffectivenessScenarios
	if len(sweepEffectiveness) > 0 {
		levels, err = parseFractions(sweepEffectiveness)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --effectiveness: %v\n", err)
			os.Exit(1)
		}
	}

	points := cfg.Simulation.RemovalPoints
	if sweepPoints > 0 {
		points = sweepPoints
	}

	scenarios := calculation.ROICImprovementScenarios(cfg.Financials, levels, points)

	if err := output.RenderSweep(os.Stdout, scenarios, sweepFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering output: %v\n", err)
		os.Exit(1)
	}
}

// parseFractions parses a list of decimal fractions and rejects values
// outside [0,1] before they reach the engine.
func parseFractions(values []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid fraction %q: %w", v, err)
		}
		if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("fraction %q outside [0,1]", v)
		}
		out = append(out, d)
	}
	return out, nil
}
