package notifier

import (
	"fmt"
	"html"
	"strings"

	"StockDash/internal/calculator"
	"StockDash/internal/model"
	"StockDash/internal/recorder"
)

// FormatQuote formats one company's dashboard into a Telegram message.
func FormatQuote(d *model.Dashboard) string {
	var b strings.Builder
	s := d.Stats

	b.WriteString(fmt.Sprintf("📈 <b>%s</b> %s | %s\n\n", d.Company.Ticker, html.EscapeString(d.Company.Name), s.Last.Date))
	b.WriteString(fmt.Sprintf("Close: %.2f (%+.2f, %+.2f%%)\n", s.Last.Close, s.Change, s.ChangePct))
	b.WriteString(fmt.Sprintf("O/H/L: %.2f / %.2f / %.2f\n", s.Last.Open, s.Last.High, s.Last.Low))
	b.WriteString(fmt.Sprintf("52w range: %.2f - %.2f (at %.0f%%)\n", s.Low52w, s.High52w, s.Position52w*100))
	b.WriteString(fmt.Sprintf("Avg volume: %d\n", s.AvgVolume))
	closes := model.Closes(d.Series)
	b.WriteString(fmt.Sprintf("SMA50: %s | SMA200: %s\n", latestSMA(closes, 50), latestSMA(closes, 200)))
	b.WriteString(fmt.Sprintf("RSI(14): %.0f\n", d.DailyRSI))
	if d.Predicted != nil {
		b.WriteString(fmt.Sprintf("\n🔮 Next close (%d-day trend): %.2f\n", d.Lookback, *d.Predicted))
	}
	return b.String()
}

// FormatDigest formats a one-line-per-company daily summary.
func FormatDigest(ds []*model.Dashboard, asOf string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Daily digest</b> | %s\n\n", asOf))
	if len(ds) == 0 {
		b.WriteString("No data.\n")
		return b.String()
	}
	for _, d := range ds {
		arrow := "▲"
		if d.Stats.Change < 0 {
			arrow = "▼"
		}
		line := fmt.Sprintf("%s %-5s %.2f %+.2f%%", arrow, d.Company.Ticker, d.Stats.Last.Close, d.Stats.ChangePct)
		if d.Predicted != nil {
			line += fmt.Sprintf(" → %.2f", *d.Predicted)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// FormatHistory formats recorded snapshots of one ticker, newest first.
func FormatHistory(ticker string, records []recorder.SnapshotRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("No snapshots recorded for %s yet.", ticker)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗂 <b>%s history</b>\n\n", ticker))
	for _, r := range records {
		b.WriteString(fmt.Sprintf("%s  %.2f %+.2f%%  → %.2f\n", r.AsOf, r.LastClose, r.ChangePct, r.Predicted))
	}
	return b.String()
}

// FormatCompanyList formats the company list for display.
func FormatCompanyList(companies []model.Company) string {
	if len(companies) == 0 {
		return "No matching companies."
	}
	var b strings.Builder
	b.WriteString("🏢 <b>Companies</b>\n\n")
	for _, c := range companies {
		b.WriteString(fmt.Sprintf("• %s  %s\n", c.Ticker, html.EscapeString(c.Name)))
	}
	return b.String()
}

// FormatHelp lists the supported commands.
func FormatHelp() string {
	return "Available commands:\n• /list [query]\n• /quote TICKER\n• /predict TICKER [lookback]\n• /history TICKER"
}

// latestSMA formats the moving average ending at the newest close, or n/a
// while the window is not yet full.
func latestSMA(closes []float64, period int) string {
	sma, err := calculator.CalculateSMA(closes, period)
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", calculator.Round2(sma))
}
