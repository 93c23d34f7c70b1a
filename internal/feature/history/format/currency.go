// Package format renders financial values for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats a value as a localized dollar amount ("$1,234.56").
// A nil value renders as "N/A".
func Currency(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return printer.Sprintf("$%.2f", *v)
}
