package domain

import "errors"

// Currency a currency code, e.g. "USD"
type Currency string

// Amount a monetary amount
type Amount float64

// Rate an exchange rate relative to some base currency
type Rate float64

// Rates maps currency codes to rates
type Rates map[Currency]Rate

var (
	// ErrUnknownCurrency a currency code is not quoted by the rates in use
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrRatesUnavailable no exchange rates could be loaded
	ErrRatesUnavailable = errors.New("rates not available")

	// ErrInvalidAmount an amount is negative or not a number
	ErrInvalidAmount = errors.New("invalid amount")
)

// RatesResponse rates quoted against Base on Date, as served by the exchange rate API.
type RatesResponse struct {
	Date  string   `json:"date"`
	Base  Currency `json:"base"`
	Rates Rates    `json:"rates"`
}

// ConversionResult a computed conversion of Amount From one currency To another.
type ConversionResult struct {
	From   Currency `json:"from"`
	Amount Amount   `json:"amount"`
	To     Currency `json:"to"`
	Result Amount   `json:"result"`
	Date   string   `json:"date"`
}

// HistoryItem one past conversion. Timestamp is in epoch milliseconds.
type HistoryItem struct {
	ID        string   `json:"id"`
	From      Currency `json:"from"`
	To        Currency `json:"to"`
	Amount    Amount   `json:"amount"`
	Result    Amount   `json:"result"`
	Timestamp int64    `json:"timestamp"`
}
