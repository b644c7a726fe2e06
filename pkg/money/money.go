// Package money formats paise amounts. Prices are stored as int64 paise so
// totals stay exact; two-decimal rupees exist only at the display edge.
package money

import "fmt"

// Format renders an amount with the currency prefix, e.g. "Rs.120.00".
func Format(paise int64) string {
	return "Rs." + Plain(paise)
}

// Plain renders an amount without the prefix, e.g. "120.00". Used for slip
// line columns and UPI amounts.
func Plain(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}
