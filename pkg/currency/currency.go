// Package currency renders monetary amounts for report display: Indian digit
// grouping, zero decimal places, no currency symbol.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount with en-IN grouping and no fraction digits,
// e.g. 1234567 -> "12,34,567".
func Format(amount float64) string {
	return printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}

// FormatInt renders an integer amount with en-IN grouping.
func FormatInt(amount int64) string {
	return printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}
