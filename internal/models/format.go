package models

import "github.com/shopspring/decimal"

// FormatGrouped renders an amount rounded to whole currency units with comma
// thousands grouping, the way amounts are presented to users.
func FormatGrouped(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
