package route

import (
	"container/heap"
	"fmt"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// #region interfaces

// Blockages answers whether a waypoint is currently believed impassable.
type Blockages interface {
	Contains(id graph.ElementID) bool
}

// #endregion interfaces

// #region planner

// Planner computes shortest-distance routes over the waypoint graph,
// excluding blocked waypoints.
type Planner struct {
	g *graph.WaypointGraph
}

// NewPlanner creates a planner over an already-loaded network.
func NewPlanner(g *graph.WaypointGraph) *Planner {
	return &Planner{g: g}
}

// #endregion planner

// #region pq

// pqItem is one frontier entry in the Dijkstra search.
type pqItem struct {
	idx  int64
	dist float64
}

type priorityQueue []pqItem

func (q priorityQueue) Len() int            { return len(q) }
func (q priorityQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q priorityQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *priorityQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// #endregion pq

// #region plan

// Plan computes the shortest edge sequence from one waypoint to another.
// Blocked waypoints are never entered (the start waypoint is exempt, so
// the vehicle can drive out of a blockage it is standing on). A nil
// blocked set means nothing is blocked. Failure never mutates anything,
// so callers can safely retry next cycle.
func (p *Planner) Plan(from, to graph.ElementID, blocked Blockages) ([]graph.WayPointEdge, error) {
	start, ok := p.g.NodeByID(from)
	if !ok {
		return nil, fmt.Errorf("plan: start waypoint %s not in network", from)
	}
	goal, ok := p.g.NodeByID(to)
	if !ok {
		return nil, fmt.Errorf("plan: goal waypoint %s not in network", to)
	}
	if blocked != nil && blocked.Contains(to) {
		return nil, fmt.Errorf("plan: goal waypoint %s is blocked", to)
	}
	if start.Index == goal.Index {
		// An empty plan is never valid: the route must always hold at
		// least one edge once the mission is underway.
		return nil, fmt.Errorf("plan: already at goal waypoint %s", to)
	}

	dist := map[int64]float64{start.Index: 0}
	prevEdge := map[int64]graph.WayPointEdge{}
	done := map[int64]bool{}

	pq := &priorityQueue{{idx: start.Index, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if done[cur.idx] {
			continue
		}
		done[cur.idx] = true
		if cur.idx == goal.Index {
			break
		}

		for _, e := range p.g.Neighbors(cur.idx) {
			next, ok := p.g.NodeByIndex(e.EndIndex)
			if !ok {
				continue
			}
			if blocked != nil && blocked.Contains(next.ID) {
				continue
			}
			nd := cur.dist + e.Distance
			if old, seen := dist[e.EndIndex]; !seen || nd < old {
				dist[e.EndIndex] = nd
				prevEdge[e.EndIndex] = e
				heap.Push(pq, pqItem{idx: e.EndIndex, dist: nd})
			}
		}
	}

	if !done[goal.Index] {
		return nil, fmt.Errorf("plan: no route from %s to %s", from, to)
	}

	// Walk predecessors back from the goal, then reverse.
	var rev []graph.WayPointEdge
	for at := goal.Index; at != start.Index; {
		e, ok := prevEdge[at]
		if !ok {
			return nil, fmt.Errorf("plan: broken predecessor chain at node %d", at)
		}
		rev = append(rev, e)
		at = e.StartIndex
	}
	edges := make([]graph.WayPointEdge, len(rev))
	for i := range rev {
		edges[i] = rev[len(rev)-1-i]
	}
	return edges, nil
}

// #endregion plan
