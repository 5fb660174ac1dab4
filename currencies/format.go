package currencies

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale locale used by Format
const DefaultLocale = "en-US"

// Format formats amount in the given currency for DefaultLocale.
func Format(amount float64, code string) string {
	return FormatLocale(amount, code, DefaultLocale)
}

// FormatLocale formats amount as a currency string for locale, always with two fraction digits.
//
// The symbol is taken from CLDR data for the locale. If the currency code is not a
// recognised ISO 4217 code the result is the code followed by the plain number, e.g.
// "US 1,234.50" for code "US". An unparseable locale is treated as en-US. It never fails.
func FormatLocale(amount float64, code, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)

	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + formatNumber(p, amount)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + p.Sprint(currency.Symbol(unit)) + formatNumber(p, amount)
}

// formatNumber renders amount with locale grouping and exactly two fraction digits
func formatNumber(p *message.Printer, amount float64) string {
	return p.Sprint(number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
