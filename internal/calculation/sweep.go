package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/roiclab/roicsim/internal/domain"
)

// DefaultRemovalPoints is the number of removal fractions swept when the
// caller does not override it.
const DefaultRemovalPoints = 50

var hundred = decimal.NewFromInt(100)

// ROICImprovement sweeps the fraction of wasted marketing spend removed
// from 0 to 100% and recomputes ROIC at each point. The returned series
// pairs removal percentages (scaled 0-100) with ROIC values.
//
// Invested capital of zero yields ROIC 0 at every point. Operating income
// is allowed to go negative; the curve is non-decreasing in the removal
// fraction whenever capital is positive.
func ROICImprovement(fin domain.FinancialInputs, wastePercentage decimal.Decimal, removalPoints int) domain.ROICSeries {
	fractions := removalFractions(removalPoints)

	series := domain.ROICSeries{
		RemovalPct: make([]decimal.Decimal, 0, len(fractions)),
		ROIC:       make([]decimal.Decimal, 0, len(fractions)),
	}

	wastedSpend := fin.TotalMarketingSpend.Mul(wastePercentage)

	for _, removal := range fractions {
		spendRemoved := wastedSpend.Mul(removal)
		currentMarketing := fin.TotalMarketingSpend.Sub(spendRemoved)

		operatingIncome := OperatingIncome(fin, currentMarketing)

		roic := decimal.Zero
		if fin.InvestedCapital.GreaterThan(decimal.Zero) {
			roic = NOPAT(operatingIncome, fin.TaxRate).Div(fin.InvestedCapital)
		}

		series.RemovalPct = append(series.RemovalPct, removal.Mul(hundred))
		series.ROIC = append(series.ROIC, roic)
	}

	return series
}

// ROICImprovementScenarios runs the removal sweep once per effectiveness
// level (waste = 1 - effectiveness) and returns one curve per scenario,
// in input order.
func ROICImprovementScenarios(fin domain.FinancialInputs, effectivenessLevels []decimal.Decimal, removalPoints int) []domain.SweepScenario {
	scenarios := make([]domain.SweepScenario, 0, len(effectivenessLevels))

	for _, effectiveness := range effectivenessLevels {
		waste := one.Sub(effectiveness)
		scenarios = append(scenarios, domain.SweepScenario{
			Effectiveness: effectiveness,
			Series:        ROICImprovement(fin, waste, removalPoints),
		})
	}

	return scenarios
}

// removalFractions generates n equally spaced fractions spanning [0,1]
// inclusive of both endpoints.
func removalFractions(n int) []decimal.Decimal {
	if n <= 1 {
		return []decimal.Decimal{decimal.Zero}
	}

	step := one.Div(decimal.NewFromInt(int64(n - 1)))
	fractions := make([]decimal.Decimal, 0, n)
	for i := 0; i < n; i++ {
		if i == n-1 {
			// Land exactly on 1 regardless of step rounding.
			fractions = append(fractions, one)
			continue
		}
		fractions = append(fractions, step.Mul(decimal.NewFromInt(int64(i))))
	}
	return fractions
}
