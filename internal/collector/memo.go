package collector

import (
	"sync"

	"StockDash/internal/model"
)

type seriesKey struct {
	ticker string
	days   int
}

type memoEntry struct {
	asOf   string
	series []model.OHLCV
}

// SeriesMemo remembers generated series per (ticker, days). Entries are
// stamped with the calendar day they end on and go stale when it changes.
// Cached slices are shared and must not be modified by callers.
type SeriesMemo struct {
	mu      sync.Mutex
	entries map[seriesKey]memoEntry
}

// NewSeriesMemo creates an empty memo.
func NewSeriesMemo() *SeriesMemo {
	return &SeriesMemo{entries: make(map[seriesKey]memoEntry)}
}

// Get returns the series stored for (ticker, days) if it ends on asOf.
func (m *SeriesMemo) Get(ticker string, days int, asOf string) ([]model.OHLCV, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[seriesKey{ticker, days}]
	if !ok || e.asOf != asOf {
		return nil, false
	}
	return e.series, true
}

// Put stores series for (ticker, days), replacing any stale entry.
func (m *SeriesMemo) Put(ticker string, days int, asOf string, series []model.OHLCV) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[seriesKey{ticker, days}] = memoEntry{asOf: asOf, series: series}
}

// Len reports the number of stored entries, stale ones included.
func (m *SeriesMemo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Purge drops every entry that does not end on asOf.
func (m *SeriesMemo) Purge(asOf string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k, e := range m.entries {
		if e.asOf != asOf {
			delete(m.entries, k)
			n++
		}
	}
	return n
}
