package graph

import "fmt"

// #region element-id

// ElementID names a waypoint in the road network. The zero value is the
// "none" sentinel used for unset snapshot fields and exhausted goals.
type ElementID string

// None is the reserved "no waypoint" sentinel.
const None ElementID = ""

// IsNone reports whether the id is the sentinel value.
func (id ElementID) IsNone() bool {
	return id == None
}

// #endregion element-id

// #region types

// WayPointNode is a named node in the road network.
type WayPointNode struct {
	ID    ElementID
	Index int64
	Lat   float64
	Lon   float64
}

// WayPointEdge is a directed lane segment between two nodes, referenced
// by node index as the navigator reports them.
type WayPointEdge struct {
	StartIndex int64
	EndIndex   int64
	Distance   float64
}

// #endregion types

// #region graph

// WaypointGraph is the in-memory road network built once at startup.
// It is read-only after construction; per-cycle lookups never mutate it.
type WaypointGraph struct {
	nodes     []WayPointNode
	byIndex   map[int64]*WayPointNode
	byID      map[ElementID]*WayPointNode
	adjacency map[int64][]WayPointEdge
	edgeCount int
}

// NewWaypointGraph builds a graph from nodes and directed edges.
// Edges referencing unknown node indexes are rejected.
func NewWaypointGraph(nodes []WayPointNode, edges []WayPointEdge) (*WaypointGraph, error) {
	g := &WaypointGraph{
		nodes:     make([]WayPointNode, len(nodes)),
		byIndex:   make(map[int64]*WayPointNode, len(nodes)),
		byID:      make(map[ElementID]*WayPointNode, len(nodes)),
		adjacency: make(map[int64][]WayPointEdge),
	}
	copy(g.nodes, nodes)

	for i := range g.nodes {
		n := &g.nodes[i]
		if n.ID.IsNone() {
			return nil, fmt.Errorf("waypoint %d has empty id", n.Index)
		}
		if _, dup := g.byIndex[n.Index]; dup {
			return nil, fmt.Errorf("duplicate waypoint index %d", n.Index)
		}
		if _, dup := g.byID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate waypoint id %s", n.ID)
		}
		g.byIndex[n.Index] = n
		g.byID[n.ID] = n
	}

	for _, e := range edges {
		if _, ok := g.byIndex[e.StartIndex]; !ok {
			return nil, fmt.Errorf("edge start node %d not in network", e.StartIndex)
		}
		if _, ok := g.byIndex[e.EndIndex]; !ok {
			return nil, fmt.Errorf("edge end node %d not in network", e.EndIndex)
		}
		g.adjacency[e.StartIndex] = append(g.adjacency[e.StartIndex], e)
		g.edgeCount++
	}

	return g, nil
}

// NodeByIndex resolves a navigator-reported node index.
func (g *WaypointGraph) NodeByIndex(idx int64) (*WayPointNode, bool) {
	n, ok := g.byIndex[idx]
	return n, ok
}

// NodeByID resolves a waypoint name.
func (g *WaypointGraph) NodeByID(id ElementID) (*WayPointNode, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Neighbors returns the outgoing lane edges from a node index.
func (g *WaypointGraph) Neighbors(idx int64) []WayPointEdge {
	return g.adjacency[idx]
}

// NodeCount returns the number of waypoints in the network.
func (g *WaypointGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of directed lane edges.
func (g *WaypointGraph) EdgeCount() int {
	return g.edgeCount
}

// #endregion graph
