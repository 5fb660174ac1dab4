package frankfurter

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"go-currency-exchange/domain"
	"sync"
	"time"
)

// cachingService decorates a frankfurter.Service with a cache of rates per base currency.
// The cachingService is concurrency safe and will periodically refresh cached values.
type cachingService struct {
	// ctx bounds the refresh go-routines. Request contexts only bound the first fetch.
	ctx context.Context

	// next the service being decorated with a cache
	next Service

	// cache the cache of rates
	cache map[domain.Currency]domain.RatesResponse

	// updateFrequency how often to refresh cached values
	updateFrequency time.Duration

	// lock synchronizes access to cache to make it concurrency safe
	lock sync.RWMutex

	logger log.Logger
}

// NewCachingService returns a new caching Service. Periodic refreshes stop, and the
// cache is emptied, once ctx is done.
func NewCachingService(ctx context.Context, updateFrequency time.Duration, logger log.Logger, s Service) Service {
	return &cachingService{
		ctx:             ctx,
		next:            s,
		cache:           map[domain.Currency]domain.RatesResponse{},
		updateFrequency: updateFrequency,
		logger:          logger,
	}
}

// Latest looks up rates and caches the results
func (s *cachingService) Latest(ctx context.Context, base domain.Currency) (domain.RatesResponse, error) {
	s.lock.RLock()
	rates, ok := s.cache[base]
	s.lock.RUnlock()

	if ok {
		return rates, nil
	}

	// Concurrent misses for the same base may each fetch. refreshNow reports which one
	// seeded the cache so only one refresh go-routine is started per base.
	rates, firstTime, err := s.refreshNow(ctx, base)
	if err != nil {
		return domain.RatesResponse{}, fmt.Errorf("refreshing cache [%v]: %w", base, err)
	}
	if firstTime {
		s.logger.Log("msg", "scheduling periodic refresh", "base", base, "every", s.updateFrequency)
		go s.refreshPeriodically(base)
	}
	return rates, nil
}

// refreshNow refreshes a cached entry immediately
func (s *cachingService) refreshNow(ctx context.Context, base domain.Currency) (domain.RatesResponse, bool, error) {
	rates, err := s.next.Latest(ctx, base)
	if err != nil {
		return domain.RatesResponse{}, false, fmt.Errorf("refresh [%v]: %w", base, err)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok := s.cache[base]
	s.cache[base] = rates
	return rates, !ok, nil
}

// refreshPeriodically refreshes a cached entry on a given schedule.
// This is expected to be called from a go-routine for each base.
func (s *cachingService) refreshPeriodically(base domain.Currency) {
	ticker := time.NewTicker(s.updateFrequency)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _, err := s.refreshNow(s.ctx, base)
			if err != nil {
				// keep the stale rates, the next tick may succeed
				s.logger.Log("msg", "periodic refresh failed", "base", base, "err", err)
			}
		case <-s.ctx.Done():
			s.uncache(base)
			return
		}
	}
}

// uncache safely removes base from the cache
func (s *cachingService) uncache(base domain.Currency) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.cache, base)
}
