package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockDash/internal/api"
	"StockDash/internal/catalog"
	"StockDash/internal/collector"
	"StockDash/internal/config"
	"StockDash/internal/generator"
	"StockDash/internal/notifier"
	"StockDash/internal/recorder"
	"StockDash/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockDash starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("[FATAL] load timezone: %v", err)
	}

	// Init fetcher and collector
	fetcher := collector.NewSyntheticFetcher(&generator.Generator{Location: loc})
	log.Printf("[INFO] data source: %s", fetcher.Name())

	companies := cfg.Companies
	if len(companies) == 0 {
		companies = catalog.Companies
	}
	col := collector.NewCollector(fetcher, companies, collector.Options{
		Days:      cfg.Series.Days,
		Lookback:  cfg.Analytics.Lookback,
		RSIPeriod: cfg.Analytics.RSIPeriod,
	})

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init notifier
	var sender notifier.Sender = notifier.NoopSender{}
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		sender = tn
	} else {
		log.Println("[INFO] telegram not configured, digests disabled")
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, sender, rec, loc)
	if err := sched.RegisterAll(cfg.Schedule.SnapshotCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing snapshot task now")
		go sched.RunSnapshotNow()
	}

	// Start HTTP API
	app := api.NewApp(col)
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()
	log.Printf("[INFO] StockDash is serving on %s. Press Ctrl+C to stop.", cfg.Server.Addr)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] StockDash stopped")
}
