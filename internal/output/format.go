// Package output renders sweep and projection results as tables, CSV or
// JSON for the presentation layer.
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as dollars with thousands separators,
// e.g. $1,234,567.89.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "$" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercent formats a fraction as a percentage with one decimal place,
// e.g. 0.305 -> 30.5%.
func FormatPercent(value decimal.Decimal) string {
	return value.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
