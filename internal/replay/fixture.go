package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kdriscoll/roadnav/go-commander/internal/commander"
	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a road
// network, a mission, and the per-cycle navigator snapshots to feed the
// commander.
type Fixture struct {
	Description     string                  `json:"description"`
	Network         FixtureNetwork          `json:"network"`
	Checkpoints     []string                `json:"checkpoints"`
	Blockages       []string                `json:"blockages,omitempty"`
	Snapshots       []FixtureSnapshot       `json:"snapshots"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results,omitempty"`
}

// FixtureNetwork is the JSON-serializable road network.
type FixtureNetwork struct {
	Waypoints []FixtureWaypoint `json:"waypoints"`
	Edges     []FixtureEdge     `json:"edges"`
}

// FixtureWaypoint mirrors graph.WayPointNode with JSON tags.
type FixtureWaypoint struct {
	ID    string  `json:"id"`
	Index int64   `json:"index"`
	Lat   float64 `json:"lat,omitempty"`
	Lon   float64 `json:"lon,omitempty"`
}

// FixtureEdge mirrors graph.WayPointEdge with JSON tags.
type FixtureEdge struct {
	Start    int64   `json:"start"`
	End      int64   `json:"end"`
	Distance float64 `json:"distance"`
}

// FixtureSnapshot is one navigator state snapshot, in cycle order.
type FixtureSnapshot struct {
	Cycle       int64  `json:"cycle"`
	LastWaypt   string `json:"last_waypt"`
	ReplanWaypt string `json:"replan_waypt,omitempty"`
	RoadBlocked bool   `json:"road_blocked,omitempty"`
}

// FixtureExpectedResult captures the expected dispatch per cycle.
type FixtureExpectedResult struct {
	Cycle    int64  `json:"cycle"`
	Behavior string `json:"behavior"`
	State    string `json:"state"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// BuildGraph converts the fixture network to a domain WaypointGraph.
func (n *FixtureNetwork) BuildGraph() (*graph.WaypointGraph, error) {
	nodes := make([]graph.WayPointNode, len(n.Waypoints))
	for i, w := range n.Waypoints {
		nodes[i] = graph.WayPointNode{
			ID:    graph.ElementID(w.ID),
			Index: w.Index,
			Lat:   w.Lat,
			Lon:   w.Lon,
		}
	}
	edges := make([]graph.WayPointEdge, len(n.Edges))
	for i, e := range n.Edges {
		edges[i] = graph.WayPointEdge{
			StartIndex: e.Start,
			EndIndex:   e.End,
			Distance:   e.Distance,
		}
	}
	return graph.NewWaypointGraph(nodes, edges)
}

// ToNavigatorState converts a snapshot to the commander's input type.
func (s *FixtureSnapshot) ToNavigatorState() commander.NavigatorState {
	return commander.NavigatorState{
		LastWaypt:   graph.ElementID(s.LastWaypt),
		ReplanWaypt: graph.ElementID(s.ReplanWaypt),
		RoadBlocked: s.RoadBlocked,
	}
}

// CheckpointIDs converts the fixture's checkpoint names to ElementIDs.
func (f *Fixture) CheckpointIDs() []graph.ElementID {
	out := make([]graph.ElementID, len(f.Checkpoints))
	for i, c := range f.Checkpoints {
		out[i] = graph.ElementID(c)
	}
	return out
}

// BlockageIDs converts the fixture's seeded blockages to ElementIDs.
func (f *Fixture) BlockageIDs() []graph.ElementID {
	out := make([]graph.ElementID, len(f.Blockages))
	for i, b := range f.Blockages {
		out[i] = graph.ElementID(b)
	}
	return out
}

// HarnessSnapshots converts the fixture snapshots to harness inputs.
func (f *Fixture) HarnessSnapshots() []Snapshot {
	out := make([]Snapshot, len(f.Snapshots))
	for i, s := range f.Snapshots {
		out[i] = Snapshot{Cycle: s.Cycle, Nav: s.ToNavigatorState()}
	}
	return out
}

// #endregion fixture-loader
