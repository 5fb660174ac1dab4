package exchange

import (
	"context"
	"go-currency-exchange/domain"
)

// Recorder keeps a record of successful conversions, e.g. history.Store
type Recorder interface {
	Record(c domain.ConversionResult) domain.HistoryItem
}

// recordingService decorates an exchange.Service so successful conversions are recorded
type recordingService struct {
	recorder Recorder
	next     Service
}

// NewRecordingService returns a Service recording every successful conversion of s
func NewRecordingService(recorder Recorder, s Service) Service {
	return &recordingService{
		recorder: recorder,
		next:     s,
	}
}

func (s *recordingService) Rates(ctx context.Context) (domain.RatesResponse, error) {
	return s.next.Rates(ctx)
}

func (s *recordingService) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.ConversionResult, error) {
	c, err := s.next.Convert(ctx, amount, from, to)
	if err != nil {
		return c, err
	}
	s.recorder.Record(c)
	return c, nil
}
