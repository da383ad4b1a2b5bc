package calculator

import (
	"fmt"
	"math"

	"StockDash/internal/model"
)

// CalculateStats summarizes the newest point of series. A single-point series
// compares the point with itself and reports zero change.
func CalculateStats(series []model.OHLCV) (*model.StatsSnapshot, error) {
	n := len(series)
	if n == 0 {
		return nil, fmt.Errorf("stats: %w", ErrInsufficientData)
	}
	last := series[n-1]
	prev := last
	if n > 1 {
		prev = series[n-2]
	}
	change := last.Close - prev.Close
	changePct := change / prev.Close * 100

	high, low, err := Calculate52WeekRange(series)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	position, err := Calculate52WeekPosition(last.Close, high, low)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	year := trailing(series, TradingYear)
	var volume float64
	for _, p := range year {
		volume += float64(p.Volume)
	}
	avgVolume := volume / math.Max(1, float64(len(year)))

	return &model.StatsSnapshot{
		Last:        last,
		Change:      Round2(change),
		ChangePct:   Round2(changePct),
		High52w:     Round2(high),
		Low52w:      Round2(low),
		AvgVolume:   int64(math.Round(avgVolume)),
		Position52w: Round2(position),
	}, nil
}
