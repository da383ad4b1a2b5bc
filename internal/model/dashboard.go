package model

import "time"

// Dashboard holds everything the chart and stats widgets render for one company.
// Predicted is nil when no prediction was requested.
type Dashboard struct {
	Company     Company
	Series      []OHLCV
	SMA50       []float64 // NaN before the window fills
	SMA200      []float64
	DailyRSI    float64
	Stats       *StatsSnapshot
	Predicted   *float64
	Lookback    int
	GeneratedAt time.Time
}
