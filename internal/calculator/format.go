package calculator

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders whole US dollars, e.g. $1,964,274 or -$12.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "$" + humanize.Comma(rounded.IntPart())
}

// FormatNumber renders a grouped number with at most three decimals,
// e.g. 116,629 or 2.5.
func FormatNumber(n decimal.Decimal) string {
	return humanize.Commaf(n.Round(3).InexactFloat64())
}
