package calculator

import (
	"errors"
	"math"

	"StockDash/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// SMASeries returns the moving average of closes aligned index-for-index with
// series. Positions before the window fills hold NaN, so a window longer than
// the series yields all NaN. Defined values are rounded to 2 decimals.
func SMASeries(series []model.OHLCV, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	result := make([]float64, len(series))
	sum := 0.0
	for i := range series {
		sum += series[i].Close
		if i >= window {
			sum -= series[i-window].Close
		}
		if i >= window-1 {
			result[i] = Round2(sum / float64(window))
		} else {
			result[i] = math.NaN()
		}
	}
	return result, nil
}

// CalculateMA50 returns the 50-day moving average series.
func CalculateMA50(series []model.OHLCV) ([]float64, error) {
	return SMASeries(series, 50)
}

// CalculateMA200 returns the 200-day moving average series.
func CalculateMA200(series []model.OHLCV) ([]float64, error) {
	return SMASeries(series, 200)
}
