package route

import (
	"log"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// #region interfaces

// GoalSource exposes the checkpoint the planner should currently drive to.
type GoalSource interface {
	CurrentGoal() graph.ElementID
}

// #endregion interfaces

// #region replanner

// Replanner regenerates the active route on demand. Failure leaves the
// prior route untouched; the commander retries on a later cycle.
type Replanner struct {
	planner *Planner
	route   *Route
	goals   GoalSource
	blocked Blockages
}

// NewReplanner wires the planner to the live route, goal sequence, and
// blockage set.
func NewReplanner(planner *Planner, r *Route, goals GoalSource, blocked Blockages) *Replanner {
	return &Replanner{planner: planner, route: r, goals: goals, blocked: blocked}
}

// Replan plans from the given waypoint to the current goal and swaps the
// result into the route. Returns false on any failure.
func (r *Replanner) Replan(from graph.ElementID) bool {
	goal := r.goals.CurrentGoal()
	if goal.IsNone() {
		log.Printf("[PLAN] replan refused: no remaining checkpoint")
		return false
	}
	edges, err := r.planner.Plan(from, goal, r.blocked)
	if err != nil {
		log.Printf("[PLAN] replan %s -> %s failed: %v", from, goal, err)
		return false
	}
	r.route.Replace(edges)
	log.Printf("[PLAN] new route %s -> %s, %d edges", from, goal, len(edges))
	return true
}

// #endregion replanner
