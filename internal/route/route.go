package route

import (
	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// #region route

// Route is the currently planned ordered sequence of directed lane edges
// from the vehicle's position to the next checkpoint. It is mutated only
// by the commander's dispatch (pop during progress tracking) and by the
// replanner (wholesale replacement).
type Route struct {
	edges []graph.WayPointEdge
}

// NewRoute creates a route from an edge sequence; edges may be nil.
func NewRoute(edges []graph.WayPointEdge) *Route {
	r := &Route{}
	r.Replace(edges)
	return r
}

// Size returns the number of remaining edges.
func (r *Route) Size() int {
	return len(r.edges)
}

// PopFront removes and returns the front edge. Popping an empty route
// returns a zero edge.
func (r *Route) PopFront() graph.WayPointEdge {
	if len(r.edges) == 0 {
		return graph.WayPointEdge{}
	}
	e := r.edges[0]
	r.edges = r.edges[1:]
	return e
}

// At returns the edge at position i without removing it. Out-of-range
// access returns a zero edge.
func (r *Route) At(i int) graph.WayPointEdge {
	if i < 0 || i >= len(r.edges) {
		return graph.WayPointEdge{}
	}
	return r.edges[i]
}

// Replace swaps in a new edge sequence. The input is copied so callers
// may reuse their slice.
func (r *Route) Replace(edges []graph.WayPointEdge) {
	r.edges = make([]graph.WayPointEdge, len(edges))
	copy(r.edges, edges)
}

// #endregion route
