package exchange

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-exchange/domain"
	"time"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Rates(ctx context.Context) (r domain.RatesResponse, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rates",
			"base", r.Base,
			"date", r.Date,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates(ctx)
}

func (s *loggingService) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (c domain.ConversionResult, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"converted_amount", c.Result,
			"date", c.Date,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}
