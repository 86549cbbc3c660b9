package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/roiclab/roicsim/internal/domain"
)

// meanStdDev returns the cross-path mean and population standard deviation
// of one year's cumulative ROIC values.
func meanStdDev(values []float64) (decimal.Decimal, decimal.Decimal) {
	if len(values) == 0 {
		return decimal.Zero, decimal.Zero
	}
	mean, std := stat.PopMeanStdDev(values, nil)
	return decimal.NewFromFloat(mean), decimal.NewFromFloat(std)
}

// percentileBands computes the 10th/25th/50th/75th/90th percentiles of the
// given values with linear interpolation.
func percentileBands(values []float64) map[string]decimal.Decimal {
	bands := map[string]float64{
		"10th": 0.10,
		"25th": 0.25,
		"50th": 0.50,
		"75th": 0.75,
		"90th": 0.90,
	}

	out := make(map[string]decimal.Decimal, len(bands))
	if len(values) == 0 {
		for name := range bands {
			out[name] = decimal.Zero
		}
		return out
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	for name, p := range bands {
		out[name] = decimal.NewFromFloat(stat.Quantile(p, stat.LinInterp, sorted, nil))
	}
	return out
}

// SummaryStatistics computes descriptive statistics (mean, median,
// population std, min, max) for a series of values.
func SummaryStatistics(values []decimal.Decimal) domain.SummaryStats {
	if len(values) == 0 {
		return domain.SummaryStats{}
	}

	floats := make([]float64, len(values))
	min, max := values[0], values[0]
	for i, v := range values {
		floats[i] = v.InexactFloat64()
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}

	sorted := append([]float64(nil), floats...)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(floats, nil)

	return domain.SummaryStats{
		Mean:   decimal.NewFromFloat(mean),
		Median: decimal.NewFromFloat(stat.Quantile(0.5, stat.LinInterp, sorted, nil)),
		Std:    decimal.NewFromFloat(std),
		Min:    min,
		Max:    max,
	}
}
