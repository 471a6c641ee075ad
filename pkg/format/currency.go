// Package format renders yen amounts and quantities for estimate documents.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Japanese)

// Yen returns an amount with a yen sign and thousands separators (e.g. "¥1,368,235").
func Yen(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-¥%d", -amount)
	}
	return printer.Sprintf("¥%d", amount)
}

// Amount returns an amount with separators and no currency sign (e.g. "1,368,235").
func Amount(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// Quantity returns a quantity with at most two decimals (e.g. "7.92", "1,234").
func Quantity(q float64) string {
	return printer.Sprint(number.Decimal(q, number.MaxFractionDigits(2)))
}
