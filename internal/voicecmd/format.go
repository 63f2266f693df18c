package voicecmd

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders d as rupees with Indian digit grouping, e.g.
// ₹1,00,000.00.
func FormatINR(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// groupIndian groups the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
