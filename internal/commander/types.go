package commander

import (
	"fmt"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// #region state

// State is the commander's high-level mission state.
type State int

const (
	StateInit State = iota // mission not yet underway, no route computed
	StateRoad              // actively following a planned route
	StateDone              // mission finished or aborted; terminal
	nStates
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateRoad:
		return "Road"
	case StateDone:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState converts a logged state name back to a State.
func ParseState(name string) (State, bool) {
	for s := State(0); s < nStates; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// #endregion state

// #region event

// Event is a condition computed fresh every cycle. Enum order is
// alphabetical; urgency is decided by the resolution order in
// currentEvent. An event not selected this cycle stays pending and is
// re-evaluated next cycle.
type Event int

const (
	EventBlocked Event = iota
	EventDone
	EventEnterLane
	EventFail
	EventNone
	EventReplan
	EventWait
	nEvents
)

func (e Event) String() string {
	switch e {
	case EventBlocked:
		return "Blocked"
	case EventDone:
		return "Done"
	case EventEnterLane:
		return "EnterLane"
	case EventFail:
		return "Fail"
	case EventNone:
		return "None"
	case EventReplan:
		return "Replan"
	case EventWait:
		return "Wait"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// #endregion event

// #region behavior

// Behavior selects what the navigator should do this cycle.
type Behavior int

const (
	BehaviorInitialize Behavior = iota
	BehaviorGo
	BehaviorQuit
	BehaviorAbort
)

func (b Behavior) String() string {
	switch b {
	case BehaviorInitialize:
		return "INITIALIZE"
	case BehaviorGo:
		return "GO"
	case BehaviorQuit:
		return "QUIT"
	case BehaviorAbort:
		return "ABORT"
	default:
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
}

// ParseBehavior converts a wire/log name back to a Behavior.
func ParseBehavior(name string) (Behavior, bool) {
	for _, b := range []Behavior{BehaviorInitialize, BehaviorGo, BehaviorQuit, BehaviorAbort} {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

// #endregion behavior

// #region order

// Order is the commander's sole output: the behavior for this cycle plus
// the next few route waypoints for the navigator. A fresh Order is built
// every cycle.
type Order struct {
	Behavior  Behavior
	Waypoints []graph.ElementID
}

// #endregion order

// #region navigator-state

// NavigatorState is the read-only per-cycle input snapshot. The driver
// loop owns the original; the FSM copies it at the start of dispatch.
type NavigatorState struct {
	LastWaypt   graph.ElementID // last waypoint the navigator reported reaching
	ReplanWaypt graph.ElementID // waypoint requesting a replan; None = no request
	RoadBlocked bool            // the road ahead is believed impassable
}

// #endregion navigator-state

// #region deps

// NodeLookup resolves navigator-reported node indexes during progress
// tracking. A miss is fatal to the mission.
type NodeLookup interface {
	NodeByIndex(idx int64) (*graph.WayPointNode, bool)
}

// RouteAccess is the planned path the FSM walks and the replanner swaps.
type RouteAccess interface {
	Size() int
	PopFront() graph.WayPointEdge
	At(i int) graph.WayPointEdge
}

// Checkpoints is the ordered mission goal sequence.
type Checkpoints interface {
	CurrentGoal() graph.ElementID
	LookaheadGoal() graph.ElementID
	Advance() bool
}

// Blockages records waypoints believed impassable.
type Blockages interface {
	Add(id graph.ElementID)
}

// Planner regenerates the route from a waypoint to the current goal.
// It must not panic and must leave the route untouched on failure.
type Planner interface {
	Replan(from graph.ElementID) bool
}

// Deps are the collaborators the FSM borrows during one Control call.
// The FSM holds no references to their internals across calls beyond
// raw waypoint identifiers.
type Deps struct {
	Graph       NodeLookup
	Route       RouteAccess
	Checkpoints Checkpoints
	Blockages   Blockages
	Planner     Planner
}

// #endregion deps
