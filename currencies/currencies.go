// Package currencies holds static display metadata for the supported currencies:
// names, symbols, flag regions and locale-aware formatting.
//
// All lookups are total. An unknown code never produces an error, it produces a
// fallback (usually the code itself).
package currencies

import (
	"fmt"
	"strings"
)

const (
	// DefaultCountry region used for flags of unmapped currencies
	DefaultCountry = "EU"

	// FlagURLBase base URL of the flag image service
	FlagURLBase = "https://flagsapi.com"

	DefaultFlagStyle = "flat"
	DefaultFlagSize  = 64
)

// codes is the allow-list, in display order.
var codes = []string{
	"USD", "EUR", "GBP", "MYR", "JPY", "CNY", "SGD", "AUD", "CAD", "INR",
	"KRW", "THB", "IDR", "PHP", "VND", "CHF", "HKD", "NZD", "SEK", "NOK",
	"DKK", "MXN", "BRL", "ZAR", "RUB", "TRY", "AED", "SAR",
}

var valid = func() map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}()

var names = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"MYR": "Malaysian Ringgit",
	"JPY": "Japanese Yen",
	"CNY": "Chinese Yuan",
	"SGD": "Singapore Dollar",
	"AUD": "Australian Dollar",
	"CAD": "Canadian Dollar",
	"INR": "Indian Rupee",
	"KRW": "South Korean Won",
	"THB": "Thai Baht",
	"IDR": "Indonesian Rupiah",
	"PHP": "Philippine Peso",
	"VND": "Vietnamese Dong",
	"CHF": "Swiss Franc",
	"HKD": "Hong Kong Dollar",
	"NZD": "New Zealand Dollar",
	"SEK": "Swedish Krona",
	"NOK": "Norwegian Krone",
	"DKK": "Danish Krone",
	"MXN": "Mexican Peso",
	"BRL": "Brazilian Real",
	"ZAR": "South African Rand",
	"RUB": "Russian Ruble",
	"TRY": "Turkish Lira",
	"AED": "UAE Dirham",
	"SAR": "Saudi Riyal",
}

var countries = map[string]string{
	"USD": "US",
	"EUR": "EU",
	"GBP": "GB",
	"MYR": "MY",
	"JPY": "JP",
	"CNY": "CN",
	"SGD": "SG",
	"AUD": "AU",
	"CAD": "CA",
	"INR": "IN",
	"KRW": "KR",
	"THB": "TH",
	"IDR": "ID",
	"PHP": "PH",
	"VND": "VN",
	"CHF": "CH",
	"HKD": "HK",
	"NZD": "NZ",
	"SEK": "SE",
	"NOK": "NO",
	"DKK": "DK",
	"MXN": "MX",
	"BRL": "BR",
	"ZAR": "ZA",
	"RUB": "RU",
	"TRY": "TR",
	"AED": "AE",
	"SAR": "SA",
}

// symbols only covers a subset of the allow-list; the rest display as their code.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"MYR": "RM",
	"JPY": "¥",
	"CNY": "¥",
	"SGD": "S$",
	"AUD": "A$",
	"CAD": "C$",
	"INR": "₹",
	"KRW": "₩",
	"THB": "฿",
	"PHP": "₱",
	"VND": "₫",
	"CHF": "CHF",
	"HKD": "HK$",
	"NZD": "NZ$",
}

// lookup returns table[key], or fallback when key is absent
func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// Name returns the display name of a currency, or code when unknown.
func Name(code string) string {
	return lookup(names, code, code)
}

// CountryCode returns the region code used to pick a flag for a currency.
func CountryCode(code string) string {
	return lookup(countries, code, DefaultCountry)
}

// Symbol returns the symbol of a currency, or code when it has none.
func Symbol(code string) string {
	return lookup(symbols, code, code)
}

// FlagURL returns the default flat 64px flag for a currency.
func FlagURL(code string) string {
	return FlagURLWith(code, DefaultFlagStyle, DefaultFlagSize)
}

// FlagURLWith builds a flag image URL. style and size go to the flag service as they are.
func FlagURLWith(code, style string, size int) string {
	return fmt.Sprintf("%v/%v/%v/%v.png", FlagURLBase, CountryCode(code), style, size)
}

// IsValid reports whether code is in the allow-list, ignoring case.
func IsValid(code string) bool {
	return valid[strings.ToUpper(code)]
}

// Codes returns the allow-list in display order.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
