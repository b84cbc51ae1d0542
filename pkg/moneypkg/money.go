// Package moneypkg provides fixed-point parsing and formatting of money amounts.
package moneypkg

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalPlaces is the precision of every amount crossing a boundary.
const DecimalPlaces = 4

// Parse reads a decimal numeral and truncates it toward zero to four decimal
// places before any arithmetic sees the value.
func Parse(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return d.Truncate(DecimalPlaces).InexactFloat64(), nil
}

// Format renders an amount rounded half away from zero to four decimal
// places, with trailing zeros trimmed down to at least one decimal digit
// (1.0, 1.1234).
func Format(f float64) string {
	s := decimal.NewFromFloat(f).Round(DecimalPlaces).StringFixed(DecimalPlaces)

	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}

	return s
}
