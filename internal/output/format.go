package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a dollar amount with thousand separators.
func FormatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "$" + b.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// FormatPercent renders a rate (0.0625 -> "6.25%").
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
