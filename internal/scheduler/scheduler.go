package scheduler

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"ChartBook/internal/chart"
	"ChartBook/internal/config"
	"ChartBook/internal/fetcher"
	"ChartBook/internal/ingest"
	"ChartBook/internal/model"
	"ChartBook/internal/recorder"
	"ChartBook/internal/series"
)

// Scheduler runs ingestion batches, either once or on a cron schedule,
// and turns each successful run into chart files and a history record.
type Scheduler struct {
	Cron     *cron.Cron
	Fetcher  fetcher.Fetcher
	Recorder recorder.Recorder
	Cfg      *config.Config
	Symbols  []string

	running sync.Mutex
}

// NewScheduler creates a scheduler over a fixed symbol sequence.
func NewScheduler(f fetcher.Fetcher, rec recorder.Recorder, cfg *config.Config, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(),
		Fetcher:  f,
		Recorder: rec,
		Cfg:      cfg,
		Symbols:  symbols,
	}
}

// RegisterRefresh registers the batch as a recurring cron job.
func (s *Scheduler) RegisterRefresh(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() {
		if err := s.RunOnce(); err != nil {
			log.Printf("[ERROR] scheduled refresh: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
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

// RunOnce executes a full batch: ingest every symbol, record the
// outcomes, and render charts for what was fetched. Overlapping runs are
// skipped.
func (s *Scheduler) RunOnce() error {
	if !s.running.TryLock() {
		log.Println("[WARN] refresh skipped: previous run still in progress")
		return nil
	}
	defer s.running.Unlock()

	from, err := s.Cfg.StartTime()
	if err != nil {
		return err
	}
	to, err := s.Cfg.EndTime()
	if err != nil {
		return err
	}

	store := ingest.NewStore()
	batch := ingest.NewBatch(s.Fetcher, store)
	outcomes, sum, err := batch.Run(s.Symbols, from, to)
	if err != nil {
		return fmt.Errorf("run batch: %w", err)
	}

	if err := s.Recorder.RecordRun(&recorder.RunRecord{Summary: sum}, recorder.OutcomeRecords(outcomes)); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	s.renderCharts(store)
	return nil
}

// renderCharts writes a price chart per stored symbol, plus weekly-close
// and log-return charts for the index symbol.
func (s *Scheduler) renderCharts(store *ingest.Store) {
	cc := s.Cfg.Charts
	for _, sym := range store.Symbols() {
		sr, _ := store.Get(sym)
		png, err := chart.RenderBars(sr, chart.Options{
			Title:      fmt.Sprintf("%s daily close", sym),
			Volume:     cc.Volume,
			SMAWindow:  cc.SMAWindow,
			BandWindow: cc.BandWindow,
			BandWidth:  cc.BandWidth,
		})
		if err != nil {
			log.Printf("[WARN] render %s: %v", sym, err)
			continue
		}
		path := filepath.Join(cc.OutputDir, sym+".png")
		if err := chart.WriteFile(png, path); err != nil {
			log.Printf("[WARN] write %s: %v", path, err)
			continue
		}
		log.Printf("[INFO] wrote %s", path)
	}

	if sr, ok := store.Get(s.Cfg.Universe.IndexSymbol); ok {
		s.renderIndexCharts(sr)
	}
}

func (s *Scheduler) renderIndexCharts(sr *model.Series) {
	cc := s.Cfg.Charts
	closes, err := series.Extract(sr, model.FieldClose)
	if err != nil {
		log.Printf("[WARN] extract close for %s: %v", sr.Symbol, err)
		return
	}

	weekly := series.Resample(closes, series.WeekEnd(time.Friday), series.ReduceLast)
	if png, err := chart.Render(weekly, chart.Options{
		Title: fmt.Sprintf("%s weekly close", sr.Symbol),
	}); err != nil {
		log.Printf("[WARN] render weekly %s: %v", sr.Symbol, err)
	} else if err := chart.WriteFile(png, filepath.Join(cc.OutputDir, sr.Symbol+"_weekly.png")); err != nil {
		log.Printf("[WARN] write weekly %s: %v", sr.Symbol, err)
	}

	returns, err := series.LogReturns(closes)
	if err != nil {
		log.Printf("[WARN] log returns for %s: %v", sr.Symbol, err)
		return
	}
	if png, err := chart.Render(returns, chart.Options{
		Title: fmt.Sprintf("%s daily log-returns", sr.Symbol),
	}); err != nil {
		log.Printf("[WARN] render returns %s: %v", sr.Symbol, err)
	} else if err := chart.WriteFile(png, filepath.Join(cc.OutputDir, sr.Symbol+"_returns.png")); err != nil {
		log.Printf("[WARN] write returns %s: %v", sr.Symbol, err)
	}
}
