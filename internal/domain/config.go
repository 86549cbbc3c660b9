package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration is the top-level scenario file loaded from YAML.
type Configuration struct {
	Financials FinancialInputs    `yaml:"financials" json:"financials"`
	Waste      WasteAssumption    `yaml:"waste" json:"waste"`
	Growth     GrowthAssumptions  `yaml:"growth" json:"growth"`
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
}

// SimulationSettings configures the sweep and the Monte Carlo projector.
// Zero values are filled with defaults by the config parser.
type SimulationSettings struct {
	Years                  int               `yaml:"years" json:"years"`
	Simulations            int               `yaml:"simulations" json:"simulations"`
	Seed                   int64             `yaml:"seed" json:"seed"`
	RemovalPoints          int               `yaml:"removal_points" json:"removalPoints"`
	BaseEffectiveness      decimal.Decimal   `yaml:"base_effectiveness" json:"baseEffectiveness"`
	EffectivenessScenarios []decimal.Decimal `yaml:"effectiveness_scenarios" json:"effectivenessScenarios"`
	RemovalScenarios       []decimal.Decimal `yaml:"removal_scenarios" json:"removalScenarios"`
	ClampNegativeIncome    *bool             `yaml:"clamp_negative_income" json:"clampNegativeIncome"`
}
