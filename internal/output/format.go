package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

const width = 60

// Money formats d as "$1,234.56", with negatives in parentheses.
func Money(d decimal.Decimal) string {
	s := "$" + group(d.Abs().StringFixed(2))
	if d.IsNegative() {
		return "(" + s + ")"
	}
	return s
}

// Amount is Money for non-zero values and blank for zero, for columns.
func Amount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return Money(d)
}

func group(fixed string) string {
	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + "." + frac
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	pad := (w - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
