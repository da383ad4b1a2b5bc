package model

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Company is an entry of the dashboard's company list.
type Company struct {
	Ticker string `json:"ticker" yaml:"ticker"`
	Name   string `json:"name" yaml:"name"`
}

// Closes extracts the close prices of a series in order.
func Closes(series []OHLCV) []float64 {
	closes := make([]float64, len(series))
	for i, b := range series {
		closes[i] = b.Close
	}
	return closes
}
