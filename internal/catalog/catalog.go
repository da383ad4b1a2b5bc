package catalog

import (
	"strings"

	"StockDash/internal/model"
)

// Companies is the default company list shown by the dashboard.
var Companies = []model.Company{
	{Ticker: "AAPL", Name: "Apple Inc."},
	{Ticker: "MSFT", Name: "Microsoft Corp."},
	{Ticker: "GOOGL", Name: "Alphabet Inc."},
	{Ticker: "AMZN", Name: "Amazon.com, Inc."},
	{Ticker: "META", Name: "Meta Platforms, Inc."},
	{Ticker: "TSLA", Name: "Tesla, Inc."},
	{Ticker: "NVDA", Name: "NVIDIA Corporation"},
	{Ticker: "JPM", Name: "JPMorgan Chase & Co."},
	{Ticker: "JNJ", Name: "Johnson & Johnson"},
	{Ticker: "V", Name: "Visa Inc."},
	{Ticker: "NFLX", Name: "Netflix, Inc."},
}

// Search returns the companies whose ticker or name contains query,
// ignoring case. An empty query matches everything.
func Search(companies []model.Company, query string) []model.Company {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Company, 0, len(companies))
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Ticker), q) || strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// Lookup finds a company by ticker, ignoring case.
func Lookup(companies []model.Company, ticker string) (model.Company, bool) {
	for _, c := range companies {
		if strings.EqualFold(c.Ticker, strings.TrimSpace(ticker)) {
			return c, true
		}
	}
	return model.Company{}, false
}
