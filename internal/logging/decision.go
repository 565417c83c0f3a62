package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema

const decisionSchema = `
CREATE TABLE IF NOT EXISTS decision_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	cycle        INTEGER NOT NULL,
	event        TEXT NOT NULL,
	prev_state   TEXT NOT NULL,
	new_state    TEXT NOT NULL,
	behavior     TEXT NOT NULL,
	last_waypt   TEXT,
	replan_waypt TEXT,
	road_blocked INTEGER NOT NULL DEFAULT 0,
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_decision_run ON decision_log(run_id, cycle);
`

// EnsureSchema creates the decision_log table if it does not exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(decisionSchema); err != nil {
		return fmt.Errorf("decision log schema: %w", err)
	}
	return nil
}

// #endregion schema

// #region decision-entry

// DecisionEntry is a single row in the decision_log table: one control
// cycle's input snapshot and the dispatch it produced.
type DecisionEntry struct {
	RunID       string
	Cycle       int64
	Event       string
	PrevState   string
	NewState    string
	Behavior    string
	LastWaypt   string
	ReplanWaypt string
	RoadBlocked bool
	CreatedAt   time.Time
}

// #endregion decision-entry

// #region log-decision

// LogDecision appends one control cycle to the decision_log table.
func LogDecision(db *sql.DB, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (run_id, cycle, event, prev_state, new_state, behavior, last_waypt, replan_waypt, road_blocked, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.Cycle,
		entry.Event,
		entry.PrevState,
		entry.NewState,
		entry.Behavior,
		nullIfEmpty(entry.LastWaypt),
		nullIfEmpty(entry.ReplanWaypt),
		boolToInt(entry.RoadBlocked),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region queries

// ListDecisions returns the decisions of a run in cycle order. A limit
// of N > 0 returns the N most recent cycles (the tail of the run); 0
// returns all of them.
func ListDecisions(db *sql.DB, runID string, limit int) ([]DecisionEntry, error) {
	q := `SELECT run_id, cycle, event, prev_state, new_state, behavior,
	             COALESCE(last_waypt, ''), COALESCE(replan_waypt, ''), road_blocked, created_at
	      FROM decision_log WHERE run_id = ? ORDER BY cycle`
	args := []interface{}{runID}
	if limit > 0 {
		// Take the tail of the run, then restore cycle order below.
		q += " DESC LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var out []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var blocked int
		var created string
		if err := rows.Scan(&e.RunID, &e.Cycle, &e.Event, &e.PrevState, &e.NewState,
			&e.Behavior, &e.LastWaypt, &e.ReplanWaypt, &blocked, &created); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.RoadBlocked = blocked != 0
		if ts, perr := time.Parse(time.RFC3339Nano, created); perr == nil {
			e.CreatedAt = ts
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if limit > 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// LatestRunID returns the run_id of the most recently written decision,
// or "" when the log is empty.
func LatestRunID(db *sql.DB) (string, error) {
	var runID string
	err := db.QueryRow(`SELECT run_id FROM decision_log ORDER BY id DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest run: %w", err)
	}
	return runID, nil
}

// #endregion queries

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
