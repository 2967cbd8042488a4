// Package money formats amounts the way the dashboard shows them.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders amount with symbol and Indian digit grouping:
// 1234567 -> "₹ 12,34,567". Paise are shown only when non-zero.
func Format(symbol string, amount decimal.Decimal) string {
	neg := amount.IsNegative()
	amount = amount.Abs()

	whole := amount.Truncate(0)
	frac := amount.Sub(whole)
	out := groupIndian(whole.String())
	if !frac.IsZero() {
		cents := amount.StringFixed(2)
		out += cents[strings.IndexByte(cents, '.'):]
	}
	if symbol != "" {
		out = symbol + " " + out
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatInt is Format for whole units.
func FormatInt(symbol string, amount int64) string {
	return Format(symbol, decimal.NewFromInt(amount))
}

// groupIndian groups the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// Percent returns part/total as a whole percentage, 0 when total is zero.
func Percent(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(part.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}
