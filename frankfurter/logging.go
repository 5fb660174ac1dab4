package frankfurter

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-exchange/domain"
	"time"
)

// loggingService decorates a frankfurter.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Latest(ctx context.Context, base domain.Currency) (r domain.RatesResponse, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "latest",
			"base", base,
			"date", r.Date,
			"rates", len(r.Rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Latest(ctx, base)
}
