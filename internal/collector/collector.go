package collector

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"StockDash/internal/calculator"
	"StockDash/internal/catalog"
	"StockDash/internal/generator"
	"StockDash/internal/model"
)

// ErrUnknownTicker is returned for a ticker missing from the company list.
var ErrUnknownTicker = errors.New("unknown ticker")

// Options tunes the series length and the indicators computed by Collect.
type Options struct {
	Days      int
	Lookback  int
	RSIPeriod int
}

// DefaultOptions matches the dashboard's three-year view.
func DefaultOptions() Options {
	return Options{
		Days:      generator.DefaultDays,
		Lookback:  calculator.DefaultLookback,
		RSIPeriod: 14,
	}
}

// Collector orchestrates series fetching and indicator computation. It owns
// the only series cache in the process.
type Collector struct {
	Fetcher   Fetcher
	Companies []model.Company
	Options   Options
	Memo      *SeriesMemo
	Now       func() time.Time
}

// NewCollector creates a new Collector. Zero option fields take their defaults.
func NewCollector(fetcher Fetcher, companies []model.Company, opts Options) *Collector {
	def := DefaultOptions()
	if opts.Days <= 0 {
		opts.Days = def.Days
	}
	if opts.Lookback <= 0 {
		opts.Lookback = def.Lookback
	}
	if opts.RSIPeriod <= 0 {
		opts.RSIPeriod = def.RSIPeriod
	}
	if companies == nil {
		companies = catalog.Companies
	}
	return &Collector{
		Fetcher:   fetcher,
		Companies: companies,
		Options:   opts,
		Memo:      NewSeriesMemo(),
		Now:       time.Now,
	}
}

// Company resolves ticker against the company list.
func (c *Collector) Company(ticker string) (model.Company, error) {
	company, ok := catalog.Lookup(c.Companies, ticker)
	if !ok {
		return model.Company{}, fmt.Errorf("%w: %s", ErrUnknownTicker, strings.ToUpper(ticker))
	}
	return company, nil
}

// Series returns the memoized series of days points for ticker, fetching it
// when absent or generated on an earlier calendar day.
func (c *Collector) Series(ticker string, days int) ([]model.OHLCV, error) {
	asOf := c.Fetcher.AsOf()
	if series, ok := c.Memo.Get(ticker, days, asOf); ok {
		return series, nil
	}
	series, err := c.Fetcher.FetchSeries(ticker, days)
	if err != nil {
		return nil, fmt.Errorf("fetch %s series: %w", ticker, err)
	}
	c.Memo.Put(ticker, days, asOf, series)
	return series, nil
}

// Collect builds the full dashboard view for ticker.
func (c *Collector) Collect(ticker string) (*model.Dashboard, error) {
	company, err := c.Company(ticker)
	if err != nil {
		return nil, err
	}
	series, err := c.Series(company.Ticker, c.Options.Days)
	if err != nil {
		return nil, err
	}

	stats, err := calculator.CalculateStats(series)
	if err != nil {
		return nil, fmt.Errorf("stats for %s: %w", company.Ticker, err)
	}

	d := &model.Dashboard{
		Company:     company,
		Series:      series,
		Stats:       stats,
		Lookback:    c.Options.Lookback,
		GeneratedAt: c.Now(),
	}

	// SMA50
	if sma, err := calculator.CalculateMA50(series); err != nil {
		log.Printf("[WARN] SMA50 calculation failed for %s: %v", company.Ticker, err)
	} else {
		d.SMA50 = sma
	}

	// SMA200
	if sma, err := calculator.CalculateMA200(series); err != nil {
		log.Printf("[WARN] SMA200 calculation failed for %s: %v", company.Ticker, err)
	} else {
		d.SMA200 = sma
	}

	// Daily RSI
	if rsi, err := calculator.CalculateRSI(series, c.Options.RSIPeriod); err != nil {
		log.Printf("[WARN] daily RSI calculation failed for %s: %v, defaulting to 50", company.Ticker, err)
		d.DailyRSI = 50
	} else {
		d.DailyRSI = rsi
	}

	predicted := calculator.PredictNextClose(series, c.Options.Lookback)
	d.Predicted = &predicted

	return d, nil
}

// CollectAll builds dashboards for every listed company, skipping failures.
func (c *Collector) CollectAll() []*model.Dashboard {
	out := make([]*model.Dashboard, 0, len(c.Companies))
	for _, company := range c.Companies {
		d, err := c.Collect(company.Ticker)
		if err != nil {
			log.Printf("[ERROR] collect %s: %v", company.Ticker, err)
			continue
		}
		out = append(out, d)
	}
	return out
}
