package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists batch history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance while a batch writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS fetch_runs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			started   INTEGER NOT NULL,
			finished  INTEGER NOT NULL,
			provider  TEXT,
			requested INTEGER,
			succeeded INTEGER,
			failed    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON fetch_runs(started)`,

		`CREATE TABLE IF NOT EXISTS fetch_outcomes (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    INTEGER NOT NULL,
			symbol    TEXT NOT NULL,
			success   INTEGER NOT NULL,
			error     TEXT,
			bar_count INTEGER,
			first_bar INTEGER,
			last_bar  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_run ON fetch_outcomes(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_symbol ON fetch_outcomes(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts the run summary and its per-symbol outcomes in one
// transaction.
func (r *SQLiteRecorder) RecordRun(run *RunRecord, outcomes []OutcomeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	sum := run.Summary
	res, err := tx.Exec(`INSERT INTO fetch_runs
		(started, finished, provider, requested, succeeded, failed)
		VALUES (?,?,?,?,?,?)`,
		sum.Started.Unix(), sum.Finished.Unix(), sum.Provider,
		sum.Requested, sum.Succeeded, sum.Failed,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, o := range outcomes {
		var first, last int64
		if !o.FirstBar.IsZero() {
			first = o.FirstBar.Unix()
		}
		if !o.LastBar.IsZero() {
			last = o.LastBar.Unix()
		}
		if _, err := tx.Exec(`INSERT INTO fetch_outcomes
			(run_id, symbol, success, error, bar_count, first_bar, last_bar)
			VALUES (?,?,?,?,?,?,?)`,
			runID, o.Symbol, boolToInt(o.Success), o.Error, o.BarCount, first, last,
		); err != nil {
			return fmt.Errorf("insert outcome %s: %w", o.Symbol, err)
		}
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
