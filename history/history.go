// Package history keeps recent conversions in memory.
package history

import (
	"github.com/google/uuid"
	"go-currency-exchange/domain"
	"sync"
	"time"
)

// DefaultLimit number of items kept when no limit is given
const DefaultLimit = 50

// Store a bounded, concurrency safe list of conversions, newest first.
// When full, the oldest item is evicted.
type Store struct {
	limit int

	lock  sync.RWMutex
	items []domain.HistoryItem

	// now and newID are replaced in tests
	now   func() time.Time
	newID func() string
}

// NewStore returns an empty store holding at most limit items
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		limit: limit,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Record adds a conversion to the history and returns the stored item
func (s *Store) Record(c domain.ConversionResult) domain.HistoryItem {
	item := domain.HistoryItem{
		ID:        s.newID(),
		From:      c.From,
		To:        c.To,
		Amount:    c.Amount,
		Result:    c.Result,
		Timestamp: s.now().UnixMilli(),
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.items = append([]domain.HistoryItem{item}, s.items...)
	if len(s.items) > s.limit {
		s.items = s.items[:s.limit]
	}
	return item
}

// List returns a copy of the history, newest first
func (s *Store) List() []domain.HistoryItem {
	s.lock.RLock()
	defer s.lock.RUnlock()
	out := make([]domain.HistoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// Clear drops every item
func (s *Store) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.items = nil
}
