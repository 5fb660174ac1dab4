// Package geo guesses a visitor's currency from their IP address.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"go-currency-exchange/currencies"
	"go-currency-exchange/domain"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	ApiUrlBase = "http://ip-api.com"

	// DefaultCountry assumed when the IP lookup fails
	DefaultCountry = "US"

	// DefaultCurrency used for countries without a supported currency
	DefaultCurrency domain.Currency = "USD"
)

// Service looks up the country of an IP address
type Service interface {
	CountryCode(ctx context.Context, ip string) (string, error)
}

// service ip-api.com client
type service struct {
	url    string
	client http.Client
}

// NewService constructs a valid geo Service. An empty url means ApiUrlBase.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ApiUrlBase
	}
	return &service{
		url: strings.TrimSuffix(url, "/"),
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// CountryCode returns the ISO 3166-1 alpha-2 code of the country ip is located in.
func (s *service) CountryCode(ctx context.Context, ip string) (string, error) {
	type response struct {
		Status      string `json:"status"`
		Message     string `json:"message"`
		CountryCode string `json:"countryCode"`
	}

	url := fmt.Sprintf("%v/json/%v", s.url, ip)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return "", fmt.Errorf("reading json: %w", err)
	}

	var r response
	if err := json.Unmarshal(bytes, &r); err != nil {
		return "", fmt.Errorf("decoding json: %w", err)
	}
	if r.Status == "fail" {
		return "", fmt.Errorf("lookup [%v]: %v", ip, r.Message)
	}
	if r.CountryCode == "" {
		return DefaultCountry, nil
	}
	return r.CountryCode, nil
}

// countryCurrencies countries with an explicit preferred currency
var countryCurrencies = map[string]domain.Currency{
	"MY": "MYR",
	"US": "USD",
	"GB": "GBP",
	"EU": "EUR",
	"DE": "EUR",
	"FR": "EUR",
	"IT": "EUR",
	"ES": "EUR",
	"JP": "JPY",
	"CN": "CNY",
	"SG": "SGD",
	"AU": "AUD",
	"CA": "CAD",
	"IN": "INR",
}

// CurrencyForCountry picks the currency to suggest to a visitor from country.
// Countries not listed above use their CLDR currency when it is a supported one;
// everything else gets DefaultCurrency.
func CurrencyForCountry(country string) domain.Currency {
	country = strings.ToUpper(strings.TrimSpace(country))
	if c, ok := countryCurrencies[country]; ok {
		return c
	}

	region, err := language.ParseRegion(country)
	if err != nil {
		return DefaultCurrency
	}
	unit, ok := currency.FromRegion(region)
	if !ok || !currencies.IsValid(unit.String()) {
		return DefaultCurrency
	}
	return domain.Currency(unit.String())
}

// Detect returns the suggested currency for ip, assuming DefaultCountry when the lookup fails
func Detect(ctx context.Context, s Service, ip string) (country string, cur domain.Currency, err error) {
	country, err = s.CountryCode(ctx, ip)
	if err != nil {
		country = DefaultCountry
	}
	return country, CurrencyForCountry(country), err
}
