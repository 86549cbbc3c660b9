// Package config loads and validates scenario files. The engine itself
// performs no input validation, so everything the simulation consumes has
// to be rejected or defaulted here first.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/roiclab/roicsim/internal/calculation"
	"github.com/roiclab/roicsim/internal/domain"
)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file, applies
// defaults for omitted simulation settings, and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills zero-valued simulation settings with the engine
// defaults.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	sim := &config.Simulation
	if sim.Years == 0 {
		sim.Years = 5
	}
	if sim.Simulations == 0 {
		sim.Simulations = 1000
	}
	if sim.RemovalPoints == 0 {
		sim.RemovalPoints = calculation.DefaultRemovalPoints
	}
	if sim.BaseEffectiveness.IsZero() {
		sim.BaseEffectiveness = decimal.NewFromFloat(0.50)
	}
	if len(sim.EffectivenessScenarios) == 0 {
		sim.EffectivenessScenarios = domain.DefaultEffectivenessScenarios
	}
	if len(sim.RemovalScenarios) == 0 {
		sim.RemovalScenarios = domain.DefaultRemovalScenarios
	}
	if sim.ClampNegativeIncome == nil {
		clamp := true
		sim.ClampNegativeIncome = &clamp
	}
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateFinancials(&config.Financials); err != nil {
		return fmt.Errorf("financials validation failed: %w", err)
	}
	if err := ip.validateWaste(&config.Waste); err != nil {
		return fmt.Errorf("waste validation failed: %w", err)
	}
	if err := ip.validateGrowth(&config.Growth); err != nil {
		return fmt.Errorf("growth validation failed: %w", err)
	}
	if err := ip.validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateFinancials(fin *domain.FinancialInputs) error {
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"revenue", fin.Revenue},
		{"cogs", fin.COGS},
		{"non_marketing_opex", fin.NonMarketingOpex},
		{"total_marketing_spend", fin.TotalMarketingSpend},
		{"invested_capital", fin.InvestedCapital},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s must be non-negative, got %s", a.name, a.value)
		}
	}
	if !inUnitRange(fin.TaxRate) {
		return fmt.Errorf("tax_rate must be between 0 and 1, got %s", fin.TaxRate)
	}
	return nil
}

func (ip *InputParser) validateWaste(waste *domain.WasteAssumption) error {
	if !inUnitRange(waste.WastePercentage) {
		return fmt.Errorf("waste_percentage must be between 0 and 1, got %s", waste.WastePercentage)
	}
	return nil
}

func (ip *InputParser) validateGrowth(growth *domain.GrowthAssumptions) error {
	if growth.MarketingGrowth.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("marketing_growth cannot be below -100%%, got %s", growth.MarketingGrowth)
	}
	if growth.CapitalGrowth.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("capital_growth cannot be below -100%%, got %s", growth.CapitalGrowth)
	}
	return nil
}

func (ip *InputParser) validateSimulation(sim *domain.SimulationSettings) error {
	if sim.Years <= 0 {
		return fmt.Errorf("years must be positive, got %d", sim.Years)
	}
	if sim.Simulations <= 0 {
		return fmt.Errorf("simulations must be positive, got %d", sim.Simulations)
	}
	if sim.RemovalPoints < 2 {
		return fmt.Errorf("removal_points must be at least 2, got %d", sim.RemovalPoints)
	}
	if !inUnitRange(sim.BaseEffectiveness) {
		return fmt.Errorf("base_effectiveness must be between 0 and 1, got %s", sim.BaseEffectiveness)
	}
	for i, e := range sim.EffectivenessScenarios {
		if !inUnitRange(e) {
			return fmt.Errorf("effectiveness_scenarios[%d] must be between 0 and 1, got %s", i, e)
		}
	}
	for i, r := range sim.RemovalScenarios {
		if !inUnitRange(r) {
			return fmt.Errorf("removal_scenarios[%d] must be between 0 and 1, got %s", i, r)
		}
	}
	return nil
}

func inUnitRange(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

// ProjectionConfig builds the Monte Carlo engine configuration from a
// validated scenario file, keeping the engine defaults for every tuning
// knob the file does not expose.
func ProjectionConfig(config *domain.Configuration) calculation.ProjectionConfig {
	pc := calculation.NewProjectionEngine().Config()
	pc.NYears = config.Simulation.Years
	pc.NSimulations = config.Simulation.Simulations
	if config.Simulation.Seed != 0 {
		pc.Seed = config.Simulation.Seed
	}
	pc.BaseEffectiveness = config.Simulation.BaseEffectiveness
	pc.RemovalScenarios = config.Simulation.RemovalScenarios
	if config.Simulation.ClampNegativeIncome != nil {
		pc.ClampNegativeIncome = *config.Simulation.ClampNegativeIncome
	}
	return pc
}
