package collector

import "StockDash/internal/model"

// Fetcher defines the interface for producing daily price series.
type Fetcher interface {
	// FetchSeries returns days consecutive daily points, oldest first.
	FetchSeries(symbol string, days int) ([]model.OHLCV, error)
	// AsOf is the calendar day (YYYY-MM-DD) a fetch made now would end on.
	AsOf() string
	Name() string
}
