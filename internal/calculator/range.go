package calculator

import (
	"errors"
	"math"

	"StockDash/internal/model"
)

// TradingYear is the trailing window, in points, of the 52-week figures.
// The synthetic calendar includes weekends, so a year is 365 points.
const TradingYear = 365

// Calculate52WeekRange scans the most recent 365 points and returns the high and low.
func Calculate52WeekRange(series []model.OHLCV) (high, low float64, err error) {
	if len(series) == 0 {
		return 0, 0, ErrInsufficientData
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, p := range trailing(series, TradingYear) {
		if p.High > high {
			high = p.High
		}
		if p.Low < low {
			low = p.Low
		}
	}
	return high, low, nil
}

// Calculate52WeekPosition returns where the current price sits within the 52-week range (0.0~1.0).
func Calculate52WeekPosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}

// trailing returns the last n points, or all of them when the series is shorter.
func trailing(series []model.OHLCV, n int) []model.OHLCV {
	if len(series) > n {
		return series[len(series)-n:]
	}
	return series
}
