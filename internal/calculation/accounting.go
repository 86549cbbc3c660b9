// Package calculation implements the marketing-waste ROIC engine: the
// accounting formulas, the single-year removal sweep, and the multi-year
// Monte Carlo projector. The engine is pure and stateless; it never
// validates its inputs (the config layer does) and it substitutes zero for
// every guarded division instead of returning errors.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/roiclab/roicsim/internal/domain"
)

var one = decimal.NewFromInt(1)

// OperatingIncome computes operating income for a given effective marketing
// spend: revenue less COGS, non-marketing opex and the marketing spend.
func OperatingIncome(fin domain.FinancialInputs, marketingSpend decimal.Decimal) decimal.Decimal {
	return fin.Revenue.Sub(fin.COGS).Sub(fin.NonMarketingOpex).Sub(marketingSpend)
}

// NOPAT computes net operating profit after tax.
func NOPAT(operatingIncome, taxRate decimal.Decimal) decimal.Decimal {
	return operatingIncome.Mul(one.Sub(taxRate))
}

// ROIC computes NOPAT over invested capital. Non-positive capital yields
// zero rather than a division error.
func ROIC(nopat, investedCapital decimal.Decimal) decimal.Decimal {
	if investedCapital.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return nopat.Div(investedCapital)
}

// EffectiveTaxRate derives the tax rate that reconciles the NOPAT actually
// earned (with waste present) against the true, waste-free operating income.
// A business carrying wasted spend reports the same after-tax profit it
// would under a higher tax rate applied to its true income; that implied
// rate is what this returns.
//
// When true operating income is exactly zero the input tax rate is returned
// unchanged. The result is clamped to [0,1]; it is meant for scenario
// comparison, not tax planning.
func EffectiveTaxRate(fin domain.FinancialInputs, wastePercentage decimal.Decimal) decimal.Decimal {
	effectiveMarketing := fin.TotalMarketingSpend.Mul(one.Sub(wastePercentage))
	wastedMarketing := fin.TotalMarketingSpend.Sub(effectiveMarketing)

	trueOperatingIncome := OperatingIncome(fin, effectiveMarketing)
	if trueOperatingIncome.IsZero() {
		return fin.TaxRate
	}

	actualOperatingIncome := trueOperatingIncome.Sub(wastedMarketing)
	actualNOPAT := NOPAT(actualOperatingIncome, fin.TaxRate)

	effectiveRate := one.Sub(actualNOPAT.Div(trueOperatingIncome))
	return clamp01(effectiveRate)
}

func clamp01(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(one) {
		return one
	}
	return d
}
