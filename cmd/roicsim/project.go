package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roiclab/roicsim/internal/calculation"
	"github.com/roiclab/roicsim/internal/config"
	"github.com/roiclab/roicsim/internal/output"
)

var projectCmd = &cobra.Command{
	Use:   "project [input-file]",
	Short: "Run the multi-year Monte Carlo ROIC projection",
	Long: `Simulate many independent multi-year paths under each waste-removal
scenario and report the mean and standard deviation of cumulative ROIC per
year, with percentile bands at the terminal year.

Examples:
  roicsim project scenario.yaml
  roicsim project scenario.yaml --years 10 --simulations 5000 --seed 42
  roicsim project scenario.yaml --removal 0,0.5,1 --format json`,
	Args: cobra.ExactArgs(1),
	Run:  runProject,
}

var (
	projectYears       int
	projectSimulations int
	projectSeed        int64
	projectRemoval     []string
	projectFormat      string
)

func init() {
	projectCmd.Flags().IntVar(&projectYears, "years", 0, "Projection horizon in years (default from config)")
	projectCmd.Flags().IntVar(&projectSimulations, "simulations", 0, "Number of Monte Carlo paths (default from config)")
	projectCmd.Flags().Int64Var(&projectSeed, "seed", 0, "Random seed for reproducible output (0 = time-based)")
	projectCmd.Flags().StringSliceVar(&projectRemoval, "removal", nil, "Waste removal scenarios (fractions in [0,1])")
	projectCmd.Flags().StringVar(&projectFormat, "format", "table", "Output format (table, csv, json)")

	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	pc := config.ProjectionConfig(cfg)
	if projectYears > 0 {
		pc.NYears = projectYears
	}
	if projectSimulations > 0 {
		pc.NSimulations = projectSimulations
	}
	if projectSeed != 0 {
		pc.Seed = projectSeed
	}
	if len(projectRemoval) > 0 {
		pc.RemovalScenarios, err = parseFractions(projectRemoval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --removal: %v\n", err)
			os.Exit(1)
		}
	}

	engine := calculation.NewProjectionEngineWithConfig(pc)
	result := engine.Run(cfg.Financials, cfg.Growth)

	if err := output.RenderProjection(os.Stdout, result, projectFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering output: %v\n", err)
		os.Exit(1)
	}
}
