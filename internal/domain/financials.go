package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialInputs is one year's accounting snapshot. All amounts are
// non-negative dollars; TaxRate is a fraction in [0,1].
type FinancialInputs struct {
	Revenue             decimal.Decimal `yaml:"revenue" json:"revenue"`
	COGS                decimal.Decimal `yaml:"cogs" json:"cogs"`
	NonMarketingOpex    decimal.Decimal `yaml:"non_marketing_opex" json:"nonMarketingOpex"`
	TotalMarketingSpend decimal.Decimal `yaml:"total_marketing_spend" json:"totalMarketingSpend"`
	InvestedCapital     decimal.Decimal `yaml:"invested_capital" json:"investedCapital"`
	TaxRate             decimal.Decimal `yaml:"tax_rate" json:"taxRate"`
}

// WasteAssumption captures what fraction of marketing spend is assumed to
// generate no return.
type WasteAssumption struct {
	WastePercentage decimal.Decimal `yaml:"waste_percentage" json:"wastePercentage"`
}

// Effectiveness returns the complement of the waste percentage.
func (w WasteAssumption) Effectiveness() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(w.WastePercentage)
}

// GrowthAssumptions holds the nominal annual growth rates used by the
// multi-year projector.
type GrowthAssumptions struct {
	MarketingGrowth decimal.Decimal `yaml:"marketing_growth" json:"marketingGrowth"`
	CapitalGrowth   decimal.Decimal `yaml:"capital_growth" json:"capitalGrowth"`
}
