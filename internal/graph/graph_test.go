package graph

import (
	"testing"
)

func testNodes() []WayPointNode {
	return []WayPointNode{
		{ID: "1.1.1", Index: 0, Lat: 30.28, Lon: -97.74},
		{ID: "1.1.2", Index: 1, Lat: 30.29, Lon: -97.73},
		{ID: "1.2.1", Index: 2, Lat: 30.30, Lon: -97.72},
	}
}

func testEdges() []WayPointEdge {
	return []WayPointEdge{
		{StartIndex: 0, EndIndex: 1, Distance: 120.0},
		{StartIndex: 1, EndIndex: 2, Distance: 85.5},
		{StartIndex: 0, EndIndex: 2, Distance: 300.0},
	}
}

func TestNewWaypointGraph(t *testing.T) {
	g, err := NewWaypointGraph(testNodes(), testEdges())
	if err != nil {
		t.Fatalf("new graph: %v", err)
	}
	if g.NodeCount() != 3 {
		t.Errorf("expected 3 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("expected 3 edges, got %d", g.EdgeCount())
	}

	n, ok := g.NodeByIndex(1)
	if !ok {
		t.Fatal("expected node at index 1")
	}
	if n.ID != "1.1.2" {
		t.Errorf("expected id 1.1.2, got %s", n.ID)
	}

	if _, ok := g.NodeByIndex(99); ok {
		t.Error("expected lookup miss for index 99")
	}

	byID, ok := g.NodeByID("1.2.1")
	if !ok || byID.Index != 2 {
		t.Errorf("NodeByID: ok=%v node=%+v", ok, byID)
	}

	if got := len(g.Neighbors(0)); got != 2 {
		t.Errorf("expected 2 outgoing edges from node 0, got %d", got)
	}
	if got := len(g.Neighbors(2)); got != 0 {
		t.Errorf("expected no outgoing edges from node 2, got %d", got)
	}
}

func TestNewWaypointGraphRejectsBadEdges(t *testing.T) {
	_, err := NewWaypointGraph(testNodes(), []WayPointEdge{{StartIndex: 0, EndIndex: 42}})
	if err == nil {
		t.Fatal("expected error for edge to unknown node")
	}
}

func TestNewWaypointGraphRejectsDuplicates(t *testing.T) {
	nodes := testNodes()
	nodes = append(nodes, WayPointNode{ID: "1.1.1", Index: 7})
	if _, err := NewWaypointGraph(nodes, nil); err == nil {
		t.Fatal("expected error for duplicate id")
	}

	nodes = testNodes()
	nodes = append(nodes, WayPointNode{ID: "9.9.9", Index: 0})
	if _, err := NewWaypointGraph(nodes, nil); err == nil {
		t.Fatal("expected error for duplicate index")
	}
}

func TestElementIDNone(t *testing.T) {
	if !None.IsNone() {
		t.Error("None should be none")
	}
	if ElementID("1.1.1").IsNone() {
		t.Error("named id should not be none")
	}
}

func TestNetworkStoreRoundTrip(t *testing.T) {
	store, err := NewNetworkStore(":memory:")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, n := range testNodes() {
		if err := store.AddWaypoint(n); err != nil {
			t.Fatalf("add waypoint: %v", err)
		}
	}
	for _, e := range testEdges() {
		if err := store.AddLaneEdge(e); err != nil {
			t.Fatalf("add edge: %v", err)
		}
	}

	// Duplicate inserts are ignored
	if err := store.AddWaypoint(testNodes()[0]); err != nil {
		t.Fatalf("duplicate waypoint: %v", err)
	}
	if err := store.AddLaneEdge(testEdges()[0]); err != nil {
		t.Fatalf("duplicate edge: %v", err)
	}

	wps, edges, err := store.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if wps != 3 || edges != 3 {
		t.Errorf("expected 3/3, got %d/%d", wps, edges)
	}

	g, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
	n, ok := g.NodeByIndex(2)
	if !ok || n.ID != "1.2.1" {
		t.Errorf("loaded node 2: ok=%v node=%+v", ok, n)
	}
}
