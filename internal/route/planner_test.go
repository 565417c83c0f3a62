package route

import (
	"testing"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// testGraph builds a small network:
//
//	a(0) -> b(1) -> c(2) -> d(3)
//	a(0) ----------> c(2)        (long shortcut)
//	b(1) -> e(4) -> d(3)         (detour around c)
func testGraph(t *testing.T) *graph.WaypointGraph {
	t.Helper()
	nodes := []graph.WayPointNode{
		{ID: "a", Index: 0},
		{ID: "b", Index: 1},
		{ID: "c", Index: 2},
		{ID: "d", Index: 3},
		{ID: "e", Index: 4},
	}
	edges := []graph.WayPointEdge{
		{StartIndex: 0, EndIndex: 1, Distance: 10},
		{StartIndex: 1, EndIndex: 2, Distance: 10},
		{StartIndex: 2, EndIndex: 3, Distance: 10},
		{StartIndex: 0, EndIndex: 2, Distance: 50},
		{StartIndex: 1, EndIndex: 4, Distance: 15},
		{StartIndex: 4, EndIndex: 3, Distance: 15},
	}
	g, err := graph.NewWaypointGraph(nodes, edges)
	if err != nil {
		t.Fatalf("test graph: %v", err)
	}
	return g
}

type fakeBlockages map[graph.ElementID]bool

func (f fakeBlockages) Contains(id graph.ElementID) bool { return f[id] }

func pathNodes(t *testing.T, g *graph.WaypointGraph, edges []graph.WayPointEdge) []graph.ElementID {
	t.Helper()
	var ids []graph.ElementID
	for _, e := range edges {
		n, ok := g.NodeByIndex(e.StartIndex)
		if !ok {
			t.Fatalf("bad edge start %d", e.StartIndex)
		}
		ids = append(ids, n.ID)
	}
	if len(edges) > 0 {
		n, ok := g.NodeByIndex(edges[len(edges)-1].EndIndex)
		if !ok {
			t.Fatalf("bad edge end")
		}
		ids = append(ids, n.ID)
	}
	return ids
}

func TestPlanShortestPath(t *testing.T) {
	g := testGraph(t)
	p := NewPlanner(g)

	edges, err := p.Plan("a", "d", nil)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	got := pathNodes(t, g, edges)
	want := []graph.ElementID{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected path %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected path %v, got %v", want, got)
		}
	}
}

func TestPlanAvoidsBlockage(t *testing.T) {
	g := testGraph(t)
	p := NewPlanner(g)

	edges, err := p.Plan("a", "d", fakeBlockages{"c": true})
	if err != nil {
		t.Fatalf("plan with blockage: %v", err)
	}
	got := pathNodes(t, g, edges)
	want := []graph.ElementID{"a", "b", "e", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected detour %v, got %v", want, got)
		}
	}
}

func TestPlanUnreachable(t *testing.T) {
	g := testGraph(t)
	p := NewPlanner(g)

	// d has no outgoing edges
	if _, err := p.Plan("d", "a", nil); err == nil {
		t.Fatal("expected error for unreachable goal")
	}
	// blocking both c and e cuts d off entirely
	if _, err := p.Plan("a", "d", fakeBlockages{"c": true, "e": true}); err == nil {
		t.Fatal("expected error when all paths blocked")
	}
	if _, err := p.Plan("a", "d", fakeBlockages{"d": true}); err == nil {
		t.Fatal("expected error for blocked goal")
	}
	if _, err := p.Plan("zz", "d", nil); err == nil {
		t.Fatal("expected error for unknown start")
	}
}

func TestPlanAlreadyAtGoal(t *testing.T) {
	g := testGraph(t)
	p := NewPlanner(g)

	// A plan from a waypoint to itself would be empty; refuse it so the
	// caller keeps whatever route it already has.
	if _, err := p.Plan("a", "a", nil); err == nil {
		t.Fatal("expected error for plan to self")
	}
}

func TestRouteOps(t *testing.T) {
	r := NewRoute(nil)
	if r.Size() != 0 {
		t.Fatalf("expected empty route, size %d", r.Size())
	}
	if e := r.PopFront(); e != (graph.WayPointEdge{}) {
		t.Errorf("pop on empty route should return zero edge, got %+v", e)
	}

	r.Replace([]graph.WayPointEdge{
		{StartIndex: 0, EndIndex: 1, Distance: 1},
		{StartIndex: 1, EndIndex: 2, Distance: 2},
	})
	if r.Size() != 2 {
		t.Fatalf("expected size 2, got %d", r.Size())
	}
	if r.At(0).StartIndex != 0 || r.At(1).StartIndex != 1 {
		t.Error("At returned wrong edges")
	}
	if r.At(5) != (graph.WayPointEdge{}) {
		t.Error("out-of-range At should return zero edge")
	}

	e := r.PopFront()
	if e.StartIndex != 0 {
		t.Errorf("expected to pop first edge, got %+v", e)
	}
	if r.Size() != 1 || r.At(0).StartIndex != 1 {
		t.Error("route state wrong after pop")
	}
}

type fixedGoal graph.ElementID

func (g fixedGoal) CurrentGoal() graph.ElementID { return graph.ElementID(g) }

func TestReplannerSwapsRoute(t *testing.T) {
	g := testGraph(t)
	r := NewRoute(nil)
	rp := NewReplanner(NewPlanner(g), r, fixedGoal("d"), fakeBlockages{})

	if !rp.Replan("a") {
		t.Fatal("replan should succeed")
	}
	if r.Size() != 3 {
		t.Errorf("expected 3 edges, got %d", r.Size())
	}
}

func TestReplannerFailureKeepsRoute(t *testing.T) {
	g := testGraph(t)
	r := NewRoute([]graph.WayPointEdge{{StartIndex: 0, EndIndex: 1, Distance: 10}})

	rp := NewReplanner(NewPlanner(g), r, fixedGoal("d"), fakeBlockages{"c": true, "e": true})
	if rp.Replan("a") {
		t.Fatal("replan should fail with everything blocked")
	}
	if r.Size() != 1 {
		t.Errorf("failed replan must not touch route, size %d", r.Size())
	}

	rp = NewReplanner(NewPlanner(g), r, fixedGoal(graph.None), nil)
	if rp.Replan("a") {
		t.Fatal("replan should fail with no remaining checkpoint")
	}
	if r.Size() != 1 {
		t.Errorf("failed replan must not touch route, size %d", r.Size())
	}

	// Replan requested at the goal itself: nothing to plan, keep driving
	// the route we have.
	rp = NewReplanner(NewPlanner(g), r, fixedGoal("d"), nil)
	if rp.Replan("d") {
		t.Fatal("replan at the goal should fail rather than install an empty route")
	}
	if r.Size() != 1 {
		t.Errorf("replan at goal must not touch route, size %d", r.Size())
	}
}
