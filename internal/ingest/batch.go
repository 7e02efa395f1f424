package ingest

import (
	"fmt"
	"log"
	"time"

	"ChartBook/internal/fetcher"
	"ChartBook/internal/model"
)

// Outcome is the per-symbol result of a batch run: the fetched series on
// success, or the failure reason. Never both.
type Outcome struct {
	Symbol string
	Series *model.Series
	Err    error
}

// Failed reports whether the symbol could not be fetched.
func (o Outcome) Failed() bool { return o.Err != nil }

// Summary counts the outcomes of one batch run.
type Summary struct {
	Provider  string
	Started   time.Time
	Finished  time.Time
	Requested int
	Succeeded int
	Failed    int
}

// Batch fetches a sequence of symbols from one provider and records the
// successful series into a store.
type Batch struct {
	Fetcher fetcher.Fetcher
	Store   *Store
}

// NewBatch creates a batch job writing into the given store.
func NewBatch(f fetcher.Fetcher, st *Store) *Batch {
	return &Batch{Fetcher: f, Store: st}
}

// Run attempts each symbol in sequence. A failed symbol is logged and
// skipped; it never aborts the batch, and it never touches the store.
// Every attempted symbol yields exactly one outcome. A single failed
// attempt is final for that symbol in that run.
func (b *Batch) Run(symbols []string, from, to time.Time) ([]Outcome, Summary, error) {
	if !to.IsZero() && from.After(to) {
		return nil, Summary{}, fmt.Errorf("start date %s is after end date %s",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	for _, sym := range symbols {
		if sym == "" {
			return nil, Summary{}, fmt.Errorf("empty symbol in request list")
		}
	}

	sum := Summary{Provider: b.Fetcher.Name(), Started: time.Now(), Requested: len(symbols)}
	outcomes := make([]Outcome, 0, len(symbols))

	for i, sym := range symbols {
		log.Printf("[INFO] fetching %s (%d/%d) from %s", sym, i+1, len(symbols), b.Fetcher.Name())

		bars, err := b.Fetcher.Fetch(sym, from, to)
		if err != nil {
			log.Printf("[WARN] fetch %s failed: %v", sym, err)
			outcomes = append(outcomes, Outcome{Symbol: sym, Err: err})
			sum.Failed++
			continue
		}

		s := &model.Series{Symbol: sym, Bars: bars, FetchedAt: time.Now()}
		if err := s.Validate(); err != nil {
			log.Printf("[WARN] fetch %s returned unordered data: %v", sym, err)
			outcomes = append(outcomes, Outcome{Symbol: sym, Err: err})
			sum.Failed++
			continue
		}

		b.Store.Put(sym, s)
		outcomes = append(outcomes, Outcome{Symbol: sym, Series: s})
		sum.Succeeded++
		log.Printf("[INFO] fetched %s: %d bars", sym, len(bars))
	}

	sum.Finished = time.Now()
	log.Printf("[INFO] batch done: %d requested, %d succeeded, %d failed",
		sum.Requested, sum.Succeeded, sum.Failed)
	return outcomes, sum, nil
}
