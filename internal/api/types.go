package api

import (
	"math"

	"StockDash/internal/model"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// ChartPoint is one chart row. SMA fields are null until their window fills.
type ChartPoint struct {
	model.OHLCV
	SMA50  *float64 `json:"sma50"`
	SMA200 *float64 `json:"sma200"`
}

// ChartResponse is the payload of GET /api/stocks/:ticker.
type ChartResponse struct {
	Ticker    string       `json:"ticker"`
	Name      string       `json:"name"`
	Range     string       `json:"range"`
	AsOf      string       `json:"asOf"`
	Points    []ChartPoint `json:"points"`
	Predicted *float64     `json:"predicted"`
	NextDate  string       `json:"nextDate"`
	Lookback  int          `json:"lookback"`
	DailyRSI  float64      `json:"dailyRsi"`
}

// StatsResponse is the payload of GET /api/stocks/:ticker/stats.
type StatsResponse struct {
	Ticker string `json:"ticker"`
	*model.StatsSnapshot
}

// PredictionResponse is the payload of GET /api/stocks/:ticker/prediction.
type PredictionResponse struct {
	Ticker    string  `json:"ticker"`
	Lookback  int     `json:"lookback"`
	Predicted float64 `json:"predicted"`
	NextDate  string  `json:"nextDate"`
}

// nullable maps the NaN sentinel to a JSON null.
func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return math.NaN()
}
