package domain

import (
	"github.com/shopspring/decimal"
)

// ROICSeries is one sweep curve: removal percentages (scaled 0-100) paired
// with the ROIC achieved at each removal level.
type ROICSeries struct {
	RemovalPct []decimal.Decimal `json:"removalPct"`
	ROIC       []decimal.Decimal `json:"roic"`
}

// SweepScenario is one sweep curve tagged with the effectiveness assumption
// that produced it. Scenarios are returned in input order so overlaid charts
// and CSV exports are stable.
type SweepScenario struct {
	Effectiveness decimal.Decimal `json:"effectiveness"`
	Series        ROICSeries      `json:"series"`
}

// ScenarioProjection is the aggregated Monte Carlo outcome for a single
// waste-removal scenario: per-year mean and standard deviation of cumulative
// ROIC across all simulated paths, plus percentile bands at the terminal year.
type ScenarioProjection struct {
	RemovalPct          decimal.Decimal            `json:"removalPct"`
	Years               []int                      `json:"years"`
	MeanROIC            []decimal.Decimal          `json:"meanRoic"`
	StdROIC             []decimal.Decimal          `json:"stdRoic"`
	TerminalPercentiles map[string]decimal.Decimal `json:"terminalPercentiles"`
}

// ProjectionResult is the full multi-year Monte Carlo output, one
// ScenarioProjection per removal scenario.
type ProjectionResult struct {
	BaseEffectiveness decimal.Decimal      `json:"baseEffectiveness"`
	NYears            int                  `json:"nYears"`
	NSimulations      int                  `json:"nSimulations"`
	Scenarios         []ScenarioProjection `json:"scenarios"`
}

// SummaryStats holds descriptive statistics for a series of values.
type SummaryStats struct {
	Mean   decimal.Decimal `json:"mean"`
	Median decimal.Decimal `json:"median"`
	Std    decimal.Decimal `json:"std"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
}

// Default scenario sets used when a configuration does not override them.
var (
	DefaultEffectivenessScenarios = []decimal.Decimal{
		decimal.NewFromFloat(0.25),
		decimal.NewFromFloat(0.50),
		decimal.NewFromFloat(0.75),
	}

	DefaultRemovalScenarios = []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(0.33),
		decimal.NewFromFloat(0.66),
		decimal.NewFromFloat(0.99),
	}
)
