package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
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

	// WAL mode so a reader can inspect history while a run is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			household_type     TEXT,
			strategy           TEXT,
			home_size          TEXT,
			allocation_percent TEXT,
			state_count        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS state_results (
			id                     INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id                 INTEGER NOT NULL REFERENCES runs(id),
			state_name             TEXT,
			state_abbr             TEXT,
			classification         TEXT,
			viability_rating       TEXT,
			combined_income        TEXT,
			disposable_income      TEXT,
			years_to_home          INTEGER,
			years_to_debt_free     INTEGER,
			home_value             TEXT,
			mortgage_rate          TEXT,
			required_allocation    TEXT,
			recommended_allocation TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run ON state_results(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(snap *RunSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`INSERT INTO runs
		(timestamp, household_type, strategy, home_size, allocation_percent, state_count)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), string(snap.HouseholdType), string(snap.Strategy),
		string(snap.HomeSize), snap.AllocationPercent, len(snap.Results),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for i := range snap.Results {
		sr := &snap.Results[i]
		_, err := r.db.Exec(`INSERT INTO state_results
			(run_id, state_name, state_abbr, classification, viability_rating,
			 combined_income, disposable_income, years_to_home, years_to_debt_free,
			 home_value, mortgage_rate, required_allocation, recommended_allocation)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			runID, sr.StateName, sr.StateAbbr, string(sr.Classification),
			sr.ViabilityRating.StringFixed(1),
			sr.CombinedIncome.StringFixed(2), sr.DisposableIncome.StringFixed(2),
			nullableYears(sr.YearsToHome), nullableYears(sr.YearsToDebtFree),
			sr.HomeValue.StringFixed(2), sr.MortgageRate.StringFixed(4),
			nullableDecimal(sr.RequiredAllocationPercent), nullableDecimal(sr.RecommendedAllocationPercent),
		)
		if err != nil {
			return fmt.Errorf("insert state result %s: %w", sr.StateAbbr, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func nullableYears(years *int) any {
	if years == nil {
		return nil
	}
	return *years
}

func nullableDecimal(v *decimal.Decimal) any {
	if v == nil {
		return nil
	}
	return v.StringFixed(4)
}
