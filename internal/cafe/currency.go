package cafe

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var phpPrinter = message.NewPrinter(language.MustParse("en-PH"))

// FormatPHP renders an amount as Philippine pesos with two fraction digits
// and locale-aware grouping, e.g. 1234.5 -> "₱1,234.50".
func FormatPHP(amount float64) string {
	return phpPrinter.Sprintf("₱%v", number.Decimal(
		amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
