package collector

import (
	"StockDash/internal/generator"
	"StockDash/internal/model"
)

// SyntheticFetcher serves deterministic random-walk series.
type SyntheticFetcher struct {
	Generator *generator.Generator
}

// NewSyntheticFetcher creates a fetcher around g. A nil g uses the wall clock.
func NewSyntheticFetcher(g *generator.Generator) *SyntheticFetcher {
	if g == nil {
		g = &generator.Generator{}
	}
	return &SyntheticFetcher{Generator: g}
}

func (f *SyntheticFetcher) Name() string { return "synthetic" }

func (f *SyntheticFetcher) AsOf() string { return f.Generator.Today() }

func (f *SyntheticFetcher) FetchSeries(symbol string, days int) ([]model.OHLCV, error) {
	return f.Generator.Generate(symbol, days)
}
