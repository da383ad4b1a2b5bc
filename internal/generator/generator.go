package generator

import (
	"errors"
	"math"
	"time"

	"StockDash/internal/calculator"
	"StockDash/internal/model"
)

// DefaultDays is three years of daily points.
const DefaultDays = 3 * 365

// DateLayout is the calendar-day format of OHLCV.Date.
const DateLayout = "2006-01-02"

// ErrInvalidDays is returned when a non-positive day count is requested.
var ErrInvalidDays = errors.New("day count must be positive")

// Generator synthesizes random-walk OHLCV series. The zero value uses the
// wall clock in the local time zone.
type Generator struct {
	Now      func() time.Time
	Location *time.Location
}

// Generate builds a series for ticker ending today, using the wall clock.
func Generate(ticker string, days int) ([]model.OHLCV, error) {
	var g Generator
	return g.Generate(ticker, days)
}

// Generate builds a series for ticker ending on the generator's current day.
func (g *Generator) Generate(ticker string, days int) ([]model.OHLCV, error) {
	return g.GenerateAt(ticker, days, g.now())
}

// Today returns the calendar day the generator treats as the newest point.
func (g *Generator) Today() string {
	return g.now().Format(DateLayout)
}

func (g *Generator) now() time.Time {
	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	if g.Location != nil {
		now = now.In(g.Location)
	}
	return now
}

// GenerateAt builds exactly days consecutive calendar-day points, the newest
// dated on asOf's calendar day. The whole series is a function of ticker,
// days and that calendar day.
func (g *Generator) GenerateAt(ticker string, days int, asOf time.Time) ([]model.OHLCV, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}

	rng := NewMulberry32(HashSeed(ticker))
	rand := rng.Float64

	basePrice := 50 + math.Floor(rand()*400)
	lastClose := basePrice * (0.9 + rand()*0.2)

	// Noon avoids DST transitions shifting the calendar day.
	y, m, d := asOf.Date()
	today := time.Date(y, m, d, 12, 0, 0, 0, asOf.Location())

	out := make([]model.OHLCV, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		drift := (rand() - 0.5) * 0.02
		volatility := 0.01 + rand()*0.02
		shock := (rand() - 0.5) * volatility

		open := math.Max(1, lastClose*(1+(rand()-0.5)*0.01))
		closePrice := math.Max(1, open*(1+drift+shock))
		high := math.Max(open, closePrice) * (1 + rand()*0.01)
		low := math.Min(open, closePrice) * (1 - rand()*0.01)
		volume := int64(math.Floor(1_000_000 + rand()*9_000_000))

		lastClose = closePrice

		out = append(out, model.OHLCV{
			Date:   date.Format(DateLayout),
			Open:   calculator.Round2(open),
			High:   calculator.Round2(high),
			Low:    calculator.Round2(low),
			Close:  calculator.Round2(closePrice),
			Volume: volume,
		})
	}
	return out, nil
}
