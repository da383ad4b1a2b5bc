package calculator

import "StockDash/internal/model"

// DefaultLookback is the regression window used when none is given.
const DefaultLookback = 60

// PredictNextClose fits an ordinary least squares line of close against the
// index 0..n-1 over the last lookback points and extrapolates one step. With
// fewer than two points it returns the last close, or 0 for an empty series.
func PredictNextClose(series []model.OHLCV, lookback int) float64 {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	data := trailing(series, lookback)
	n := len(data)
	if n == 0 {
		return 0
	}
	if n < 2 {
		return data[n-1].Close
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, p := range data {
		x := float64(i)
		sumX += x
		sumY += p.Close
		sumXY += x * p.Close
		sumXX += x * x
	}
	fn := float64(n)
	slope := 0.0
	if denom := fn*sumXX - sumX*sumX; denom != 0 {
		slope = (fn*sumXY - sumX*sumY) / denom
	}
	intercept := (sumY - slope*sumX) / fn
	return Round2(intercept + slope*fn)
}
