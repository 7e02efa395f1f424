package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ChartBook/internal/config"
	"ChartBook/internal/fetcher"
	"ChartBook/internal/model"
	"ChartBook/internal/recorder"
	"ChartBook/internal/scheduler"
	"ChartBook/internal/universe"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ChartBook starting...")

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

	// Load symbol universe
	records, err := universe.Load(cfg.Universe.File)
	if err != nil {
		log.Fatalf("[FATAL] load universe: %v", err)
	}
	symbols := universe.FilterPrefix(records, cfg.Universe.Prefix)
	log.Printf("[INFO] universe: %d symbols, %d after prefix %q",
		len(records), len(symbols), cfg.Universe.Prefix)

	// The index series is always fetched, ahead of the equities.
	if cfg.Universe.IndexSymbol != "" && !contains(symbols, cfg.Universe.IndexSymbol) {
		symbols = append([]string{cfg.Universe.IndexSymbol}, symbols...)
	}
	if len(symbols) == 0 {
		log.Fatal("[FATAL] no symbols to fetch")
	}

	// Init fetcher
	var f fetcher.Fetcher
	switch cfg.Source.Provider {
	case "stooq":
		f = fetcher.NewStooqFetcher(cfg.Proxy)
	case "mock":
		bars := make(map[string][]model.Bar, len(symbols))
		for i, sym := range symbols {
			bars[sym] = fetcher.GenerateBars(100*float64(i+1), 250)
		}
		f = &fetcher.MockFetcher{Bars: bars}
	default:
		f = fetcher.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", f.Name())

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

	sched := scheduler.NewScheduler(f, rec, cfg, symbols)

	if err := sched.RunOnce(); err != nil {
		log.Fatalf("[FATAL] batch run: %v", err)
	}

	// One-shot unless a refresh schedule is configured.
	if cfg.Schedule.RefreshCron == "" {
		log.Println("[INFO] ChartBook done")
		return
	}

	if err := sched.RegisterRefresh(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	log.Printf("[INFO] refreshing on schedule %q. Press Ctrl+C to stop.", cfg.Schedule.RefreshCron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
