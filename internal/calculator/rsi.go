package calculator

import (
	"errors"

	"StockDash/internal/model"
)

// CalculateRSI computes the Wilder-smoothed RSI of closes over the given period.
// Requires at least period+1 points. Returns 50.0 if data is insufficient.
func CalculateRSI(series []model.OHLCV, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(series) < period+1 {
		return 50.0, nil // default when data insufficient
	}

	closes := model.Closes(series)

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return Round2(100.0 - 100.0/(1.0+rs)), nil
}
