package collector

import (
	"errors"
	"fmt"
	"strings"

	"StockDash/internal/model"
)

// RangeKey selects the visible window of a chart.
type RangeKey string

const (
	Range1M  RangeKey = "1M"
	Range3M  RangeKey = "3M"
	Range6M  RangeKey = "6M"
	Range1Y  RangeKey = "1Y"
	RangeYTD RangeKey = "YTD"
	RangeAll RangeKey = "ALL"
)

// DefaultRange is the window shown when none is requested.
const DefaultRange = Range6M

// ErrInvalidRange is returned for an unknown range key.
var ErrInvalidRange = errors.New("invalid range")

var rangeDays = map[RangeKey]int{
	Range1M: 30,
	Range3M: 90,
	Range6M: 180,
	Range1Y: 365,
}

// ParseRange parses a range key, case-insensitively. Empty input yields DefaultRange.
func ParseRange(s string) (RangeKey, error) {
	if s == "" {
		return DefaultRange, nil
	}
	key := RangeKey(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := rangeDays[key]; ok || key == RangeYTD || key == RangeAll {
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRange, s)
}

// SliceRange returns the tail of series visible under key. YTD starts at the
// first point dated in today's year and falls back to the whole series when
// there is none. today is a YYYY-MM-DD calendar day.
func SliceRange(series []model.OHLCV, key RangeKey, today string) ([]model.OHLCV, error) {
	switch key {
	case RangeAll:
		return series, nil
	case RangeYTD:
		if len(today) < 4 {
			return nil, fmt.Errorf("%w: bad calendar day %q", ErrInvalidRange, today)
		}
		start := today[:4] + "-01-01"
		for i, p := range series {
			if p.Date >= start {
				return series[i:], nil
			}
		}
		return series, nil
	}
	days, ok := rangeDays[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, key)
	}
	if len(series) > days {
		return series[len(series)-days:], nil
	}
	return series, nil
}
