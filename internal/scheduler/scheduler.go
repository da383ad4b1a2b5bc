package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"StockDash/internal/calculator"
	"StockDash/internal/catalog"
	"StockDash/internal/collector"
	"StockDash/internal/notifier"
	"StockDash/internal/recorder"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// historyLimit caps the snapshots listed by /history.
const historyLimit = 10

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Sender
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. Cron specs are read in loc, the zone
// that decides each series' calendar day; nil means time.Local.
func NewScheduler(ctx context.Context, col *collector.Collector, sender notifier.Sender, rec recorder.Recorder, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		Collector: col,
		Notifier:  sender,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the snapshot task and the nightly memo cleanup.
func (s *Scheduler) RegisterAll(snapshotCron string) error {
	if _, err := s.Cron.AddFunc(snapshotCron, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	// Series end on "today", so yesterday's entries are dead weight after midnight.
	if _, err := s.Cron.AddFunc("5 0 0 * * *", s.purgeTask); err != nil {
		return fmt.Errorf("register memo purge: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunSnapshotNow executes the snapshot task immediately (for RUN_ON_START).
func (s *Scheduler) RunSnapshotNow() {
	s.snapshotTask()
}

func (s *Scheduler) snapshotTask() {
	runID := uuid.NewString()
	log.Printf("[INFO] running snapshot task %s", runID)

	dashboards := s.Collector.CollectAll()
	for _, d := range dashboards {
		rec := &recorder.SnapshotRecord{
			RunID:     runID,
			Ticker:    d.Company.Ticker,
			AsOf:      d.Stats.Last.Date,
			LastClose: d.Stats.Last.Close,
			Change:    d.Stats.Change,
			ChangePct: d.Stats.ChangePct,
			High52w:   d.Stats.High52w,
			Low52w:    d.Stats.Low52w,
			AvgVolume: d.Stats.AvgVolume,
			DailyRSI:  d.DailyRSI,
		}
		if d.Predicted != nil {
			rec.Predicted = *d.Predicted
		}
		if err := s.Recorder.RecordSnapshot(rec); err != nil {
			log.Printf("[ERROR] record snapshot %s: %v", d.Company.Ticker, err)
		}
	}

	s.trySend(notifier.FormatDigest(dashboards, s.Collector.Fetcher.AsOf()))
	log.Printf("[INFO] snapshot task %s done: %d/%d companies", runID, len(dashboards), len(s.Collector.Companies))
}

func (s *Scheduler) purgeTask() {
	n := s.Collector.Memo.Purge(s.Collector.Fetcher.AsOf())
	log.Printf("[INFO] purged %d stale series", n)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "/list":
		return notifier.FormatCompanyList(catalog.Search(s.Collector.Companies, strings.Join(args, " ")))
	case "/quote":
		if len(args) == 0 {
			return "Usage: /quote TICKER"
		}
		d, err := s.Collector.Collect(args[0])
		if err != nil {
			return commandError(err)
		}
		return notifier.FormatQuote(d)
	case "/predict":
		if len(args) == 0 {
			return "Usage: /predict TICKER [lookback]"
		}
		lookback := s.Collector.Options.Lookback
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 2 {
				return "Lookback must be an integer of at least 2"
			}
			lookback = n
		}
		company, err := s.Collector.Company(args[0])
		if err != nil {
			return commandError(err)
		}
		series, err := s.Collector.Series(company.Ticker, s.Collector.Options.Days)
		if err != nil {
			return commandError(err)
		}
		predicted := calculator.PredictNextClose(series, lookback)
		return fmt.Sprintf("🔮 %s next close (%d-day trend): %.2f", company.Ticker, lookback, predicted)
	case "/history":
		if len(args) == 0 {
			return "Usage: /history TICKER"
		}
		company, err := s.Collector.Company(args[0])
		if err != nil {
			return commandError(err)
		}
		records, err := s.Recorder.History(company.Ticker, historyLimit)
		if err != nil {
			return commandError(err)
		}
		return notifier.FormatHistory(company.Ticker, records)
	default:
		return notifier.FormatHelp()
	}
}

func commandError(err error) string {
	if errors.Is(err, collector.ErrUnknownTicker) {
		return "Unknown ticker. Try /list"
	}
	log.Printf("[ERROR] command failed: %v", err)
	return "Something went wrong, please try again later"
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
