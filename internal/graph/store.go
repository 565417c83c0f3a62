package graph

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS waypoints (
	idx   INTEGER PRIMARY KEY,
	id    TEXT NOT NULL UNIQUE,
	lat   REAL NOT NULL DEFAULT 0,
	lon   REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS lane_edges (
	rowid_     INTEGER PRIMARY KEY AUTOINCREMENT,
	start_idx  INTEGER NOT NULL,
	end_idx    INTEGER NOT NULL,
	distance   REAL NOT NULL,
	UNIQUE(start_idx, end_idx),
	FOREIGN KEY (start_idx) REFERENCES waypoints(idx),
	FOREIGN KEY (end_idx) REFERENCES waypoints(idx)
);
CREATE INDEX IF NOT EXISTS idx_lane_edges_start ON lane_edges(start_idx);
`

// #endregion schema

// #region store-struct

// NetworkStore persists the road network in SQLite. The commander loads
// it into a WaypointGraph once at startup; the store itself is only hit
// by the bootstrap and inspect tools.
type NetworkStore struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewNetworkStore opens the SQLite database and runs migrations.
func NewNetworkStore(dbPath string) (*NetworkStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &NetworkStore{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *NetworkStore) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor

// DB returns the underlying *sql.DB for use by other packages
// (mission store, decision log).
func (s *NetworkStore) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region add-waypoint

// AddWaypoint inserts a waypoint. Re-inserting the same index is ignored.
func (s *NetworkStore) AddWaypoint(n WayPointNode) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO waypoints (idx, id, lat, lon) VALUES (?, ?, ?, ?)`,
		n.Index, string(n.ID), n.Lat, n.Lon,
	)
	if err != nil {
		return fmt.Errorf("add waypoint %s: %w", n.ID, err)
	}
	return nil
}

// #endregion add-waypoint

// #region add-edge

// AddLaneEdge inserts a directed lane edge. Duplicates are ignored.
func (s *NetworkStore) AddLaneEdge(e WayPointEdge) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO lane_edges (start_idx, end_idx, distance) VALUES (?, ?, ?)`,
		e.StartIndex, e.EndIndex, e.Distance,
	)
	if err != nil {
		return fmt.Errorf("add lane edge %d->%d: %w", e.StartIndex, e.EndIndex, err)
	}
	return nil
}

// #endregion add-edge

// #region load

// Load reads the full network and builds the in-memory WaypointGraph.
func (s *NetworkStore) Load() (*WaypointGraph, error) {
	rows, err := s.db.Query(`SELECT idx, id, lat, lon FROM waypoints ORDER BY idx ASC`)
	if err != nil {
		return nil, fmt.Errorf("load waypoints: %w", err)
	}
	defer rows.Close()

	var nodes []WayPointNode
	for rows.Next() {
		var n WayPointNode
		var id string
		if err := rows.Scan(&n.Index, &id, &n.Lat, &n.Lon); err != nil {
			return nil, fmt.Errorf("scan waypoint: %w", err)
		}
		n.ID = ElementID(id)
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate waypoints: %w", err)
	}

	edgeRows, err := s.db.Query(`SELECT start_idx, end_idx, distance FROM lane_edges ORDER BY start_idx ASC`)
	if err != nil {
		return nil, fmt.Errorf("load lane edges: %w", err)
	}
	defer edgeRows.Close()

	var edges []WayPointEdge
	for edgeRows.Next() {
		var e WayPointEdge
		if err := edgeRows.Scan(&e.StartIndex, &e.EndIndex, &e.Distance); err != nil {
			return nil, fmt.Errorf("scan lane edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lane edges: %w", err)
	}

	return NewWaypointGraph(nodes, edges)
}

// #endregion load

// #region counts

// Counts returns waypoint and lane-edge totals for the inspect tool.
func (s *NetworkStore) Counts() (waypoints, edges int, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM waypoints`).Scan(&waypoints); err != nil {
		return 0, 0, fmt.Errorf("count waypoints: %w", err)
	}
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM lane_edges`).Scan(&edges); err != nil {
		return 0, 0, fmt.Errorf("count lane edges: %w", err)
	}
	return waypoints, edges, nil
}

// #endregion counts
