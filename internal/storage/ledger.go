package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is one money event of a run, with the balances after it.
type LedgerEntry struct {
	ID        string
	RunID     string
	GameID    string
	Kind      string // "coin", "year_end", "deposit", ...
	Amount    float64
	Current   float64
	ISA       float64
	Year      int
	Seq       int // Order within the run
	CreatedAt time.Time
}

// RunSummary aggregates the ledger of one run.
type RunSummary struct {
	RunID      string
	GameID     string
	Entries    int
	Deposited  float64
	FinalYear  int
	FinalWorth float64
	StartedAt  time.Time
}

// SaveLedger writes entries in one transaction. Entries without an ID get a
// fresh UUID.
func (s *Store) SaveLedger(entries []LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin ledger write: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.Prepare(
		`INSERT INTO ledger
		 (id, run_id, game_id, kind, amount, current_balance, isa_balance, year, seq)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare ledger insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, err := stmt.Exec(e.ID, e.RunID, e.GameID, e.Kind, e.Amount, e.Current, e.ISA, e.Year, e.Seq); err != nil {
			return fmt.Errorf("storage: cannot save ledger entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ledger: %w", err)
	}
	return nil
}

// RunLedger retrieves the ledger of one run in event order.
func (s *Store) RunLedger(runID string) ([]LedgerEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, kind, amount, current_balance, isa_balance, year, seq, created_at
		 FROM ledger
		 WHERE run_id = ?
		 ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ledger: %w", err)
	}
	defer rows.Close()

	var entries []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.GameID, &e.Kind, &e.Amount,
			&e.Current, &e.ISA, &e.Year, &e.Seq, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan ledger row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentRuns summarizes the most recent runs of a game.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT l.run_id, l.game_id, COUNT(*),
		        COALESCE(SUM(CASE WHEN l.kind = 'deposit' THEN l.amount ELSE 0 END), 0),
		        MAX(l.year), MIN(l.created_at),
		        (SELECT last.current_balance + last.isa_balance FROM ledger last
		          WHERE last.run_id = l.run_id ORDER BY last.seq DESC LIMIT 1)
		 FROM ledger l
		 WHERE l.game_id = ?
		 GROUP BY l.run_id, l.game_id
		 ORDER BY MIN(l.created_at) DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var startedAt any
		if err := rows.Scan(&r.RunID, &r.GameID, &r.Entries, &r.Deposited,
			&r.FinalYear, &startedAt, &r.FinalWorth); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run row: %w", err)
		}
		r.StartedAt = parseTime(startedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
