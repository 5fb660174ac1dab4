package exchange

import (
	"context"
	"fmt"
	"github.com/shopspring/decimal"
	"go-currency-exchange/domain"
	"go-currency-exchange/frankfurter"
	"math"
	"strings"
)

// Service converts amounts between currencies using rates quoted against one base currency
type Service interface {
	Rates(ctx context.Context) (domain.RatesResponse, error)
	Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.ConversionResult, error)
}

// service exchange API backed by the Frankfurter rates
type service struct {
	// rates source of the latest rates
	rates frankfurter.Service

	// base currency rates are quoted against
	base domain.Currency
}

// NewService constructs a valid Service
func NewService(rates frankfurter.Service, base domain.Currency) Service {
	return &service{
		rates: rates,
		base:  normalize(base),
	}
}

// Rates returns the latest rates for the configured base.
// As a side-effect the cache of exchange rates might be updated.
func (s *service) Rates(ctx context.Context) (domain.RatesResponse, error) {
	r, err := s.rates.Latest(ctx, s.base)
	if err != nil {
		return domain.RatesResponse{}, fmt.Errorf("%w: %w", domain.ErrRatesUnavailable, err)
	}
	return r, nil
}

// Convert computes a conversion from one currency to another with the current exchange rates.
// Codes are case-insensitive and both must be quoted by the current rates.
func (s *service) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.ConversionResult, error) {
	a := float64(amount)
	if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
		return domain.ConversionResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, a)
	}

	from, to = normalize(from), normalize(to)

	r, err := s.Rates(ctx)
	if err != nil {
		return domain.ConversionResult{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}

	fromRate, ok := r.Rates[from]
	if !ok || fromRate == 0 {
		return domain.ConversionResult{}, fmt.Errorf("source currency %v: %w", from, domain.ErrUnknownCurrency)
	}
	toRate, ok := r.Rates[to]
	if !ok {
		return domain.ConversionResult{}, fmt.Errorf("target currency %v: %w", to, domain.ErrUnknownCurrency)
	}

	result := decimal.NewFromFloat(a).
		Mul(decimal.NewFromFloat(float64(toRate))).
		Div(decimal.NewFromFloat(float64(fromRate)))

	return domain.ConversionResult{
		From:   from,
		Amount: amount,
		To:     to,
		Result: domain.Amount(result.InexactFloat64()),
		Date:   r.Date,
	}, nil
}

func normalize(c domain.Currency) domain.Currency {
	return domain.Currency(strings.ToUpper(strings.TrimSpace(string(c))))
}
