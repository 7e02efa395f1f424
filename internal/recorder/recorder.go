package recorder

import (
	"time"

	"ChartBook/internal/ingest"
)

// RunRecord summarizes one completed batch run.
type RunRecord struct {
	Summary ingest.Summary
}

// OutcomeRecord is the persisted form of one per-symbol fetch outcome.
type OutcomeRecord struct {
	Symbol   string
	Success  bool
	Error    string
	BarCount int
	FirstBar time.Time
	LastBar  time.Time
}

// Recorder persists batch history for later inspection. The in-memory
// store stays the source of truth for the run itself; this is write-only
// history.
type Recorder interface {
	RecordRun(run *RunRecord, outcomes []OutcomeRecord) error
	Close() error
}

// OutcomeRecords converts batch outcomes into their persisted form.
func OutcomeRecords(outcomes []ingest.Outcome) []OutcomeRecord {
	recs := make([]OutcomeRecord, 0, len(outcomes))
	for _, o := range outcomes {
		rec := OutcomeRecord{Symbol: o.Symbol, Success: !o.Failed()}
		if o.Failed() {
			rec.Error = o.Err.Error()
		} else {
			rec.BarCount = o.Series.Len()
			if b, ok := o.Series.First(); ok {
				rec.FirstBar = b.Time
			}
			if b, ok := o.Series.Last(); ok {
				rec.LastBar = b.Time
			}
		}
		recs = append(recs, rec)
	}
	return recs
}
