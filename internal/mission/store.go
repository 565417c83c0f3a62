package mission

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS checkpoints (
	seq          INTEGER PRIMARY KEY,
	waypoint_id  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS blockages (
	waypoint_id  TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL
);
`

// #endregion schema

// #region store

// Store persists the mission definition (checkpoint order) and blockages
// observed during a run, sharing the road-network database.
type Store struct {
	db *sql.DB
}

// NewStore creates tables on an already-open database and returns a Store.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("mission schema: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion store

// #region checkpoints

// SetCheckpoints replaces the stored mission with the given checkpoint
// order.
func (s *Store) SetCheckpoints(ids []graph.ElementID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM checkpoints`); err != nil {
		return fmt.Errorf("clear checkpoints: %w", err)
	}
	for i, id := range ids {
		if _, err := tx.Exec(`INSERT INTO checkpoints (seq, waypoint_id) VALUES (?, ?)`, i, string(id)); err != nil {
			return fmt.Errorf("insert checkpoint %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// LoadCheckpoints reads the mission checkpoints in order.
func (s *Store) LoadCheckpoints() ([]graph.ElementID, error) {
	rows, err := s.db.Query(`SELECT waypoint_id FROM checkpoints ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("load checkpoints: %w", err)
	}
	defer rows.Close()

	var ids []graph.ElementID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		ids = append(ids, graph.ElementID(id))
	}
	return ids, rows.Err()
}

// #endregion checkpoints

// #region blockages

// RecordBlockage persists an observed blockage so a restarted commander
// plans around it immediately.
func (s *Store) RecordBlockage(id graph.ElementID) error {
	if id.IsNone() {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO blockages (waypoint_id, created_at) VALUES (?, ?)`,
		string(id), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record blockage %s: %w", id, err)
	}
	return nil
}

// ListBlockages returns all recorded blockages.
func (s *Store) ListBlockages() ([]graph.ElementID, error) {
	rows, err := s.db.Query(`SELECT waypoint_id FROM blockages ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list blockages: %w", err)
	}
	defer rows.Close()

	var ids []graph.ElementID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan blockage: %w", err)
		}
		ids = append(ids, graph.ElementID(id))
	}
	return ids, rows.Err()
}

// ClearBlockages removes all recorded blockages (new mission start).
func (s *Store) ClearBlockages() error {
	if _, err := s.db.Exec(`DELETE FROM blockages`); err != nil {
		return fmt.Errorf("clear blockages: %w", err)
	}
	return nil
}

// #endregion blockages
