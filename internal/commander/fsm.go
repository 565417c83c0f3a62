package commander

import (
	"log"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// Commander state transition design notes:
//
// States are nodes in a directed graph of the commander finite state
// machine. Each arrow is labelled with the event that triggers it and
// has an associated action method. The full (event, state) matrix is
// materialized as a table so dispatch is a single lookup: every cell is
// defaulted to an error action that stays in the current state, then the
// meaningful combinations are installed explicitly.
//
// Control() computes the most urgent pending event, commits the state
// change from the table, then runs the cell's action. The state change
// happens before the action so an action always observes the
// already-updated state. Event priorities are independent of state.

// #region table

// action is a state transition action method. Every action returns the
// commander order for this cycle.
type action func(f *FSM, event Event) Order

// transition is one cell of the (event, state) matrix.
type transition struct {
	next   State
	action action
}

// #endregion table

// #region fsm

// FSM is the commander finite state machine. It is single-threaded and
// cycle-driven: the driver loop calls Control exactly once per control
// cycle with a fresh NavigatorState snapshot.
type FSM struct {
	deps Deps

	state State
	prev  State

	// snapshot copied at the start of each Control call
	navstate NavigatorState

	// per-cycle bookkeeping that persists across cycles
	currentWay graph.ElementID
	oldReplan  graph.ElementID

	lastEvent Event

	ttable [nEvents][nStates]transition
}

// #endregion fsm

// #region constructor

// New builds the FSM in StateInit with a fully populated transition
// table.
func New(deps Deps) *FSM {
	f := &FSM{deps: deps, state: StateInit, prev: StateInit, lastEvent: EventNone}

	// Default every cell: invalid combination, stay in current state.
	for e := Event(0); e < nEvents; e++ {
		for s := State(0); s < nStates; s++ {
			f.ttable[e][s] = transition{next: s, action: (*FSM).actionError}
		}
	}

	f.add(EventBlocked, (*FSM).actionInDone, StateDone, StateDone)
	f.add(EventBlocked, (*FSM).actionInInit, StateInit, StateInit)
	f.add(EventBlocked, (*FSM).blockedInRoad, StateRoad, StateRoad)

	f.add(EventDone, (*FSM).actionInDone, StateDone, StateDone)
	f.add(EventDone, (*FSM).actionToDone, StateInit, StateDone)
	f.add(EventDone, (*FSM).actionToDone, StateRoad, StateDone)

	f.add(EventEnterLane, (*FSM).actionInDone, StateDone, StateDone)
	f.add(EventEnterLane, (*FSM).initToRoad, StateInit, StateRoad)
	f.add(EventEnterLane, (*FSM).actionInRoad, StateRoad, StateRoad)

	f.add(EventFail, (*FSM).actionInDone, StateDone, StateDone)
	f.add(EventFail, (*FSM).actionFail, StateInit, StateDone)
	f.add(EventFail, (*FSM).actionFail, StateRoad, StateDone)

	f.add(EventNone, (*FSM).actionInDone, StateDone, StateDone)
	f.add(EventNone, (*FSM).actionInInit, StateInit, StateInit)
	f.add(EventNone, (*FSM).actionInRoad, StateRoad, StateRoad)

	f.add(EventWait, (*FSM).actionInDone, StateDone, StateDone)
	f.add(EventWait, (*FSM).actionInInit, StateInit, StateInit)
	f.add(EventWait, (*FSM).actionWait, StateRoad, StateRoad)

	f.add(EventReplan, (*FSM).actionInDone, StateDone, StateDone)
	f.add(EventReplan, (*FSM).actionInInit, StateInit, StateInit)
	f.add(EventReplan, (*FSM).replanInRoad, StateRoad, StateRoad)

	return f
}

// add installs one transition in the table.
func (f *FSM) add(event Event, act action, from, to State) {
	f.ttable[event][from] = transition{next: to, action: act}
}

// #endregion constructor

// #region accessors

// State returns the current mission state.
func (f *FSM) State() State {
	return f.state
}

// Previous returns the state before the most recent dispatch.
func (f *FSM) Previous() State {
	return f.prev
}

// LastEvent returns the event resolved by the most recent dispatch.
func (f *FSM) LastEvent() Event {
	return f.lastEvent
}

// #endregion accessors

// #region control

// Control is the FSM's single entry point, called once per control
// cycle. It copies the snapshot, resolves the most urgent pending event,
// commits the table's state change, and runs the transition action.
func (f *FSM) Control(navstate NavigatorState) Order {
	f.navstate = navstate

	event := f.currentEvent()
	f.lastEvent = event

	x := &f.ttable[event][f.state]

	f.prev = f.state
	f.state = x.next
	if f.state != f.prev {
		log.Printf("[CMDR] state changing from %s to %s, event = %s", f.prev, f.state, event)
	}

	return x.action(f, event)
}

// #endregion control

// #region current-event

// currentEvent returns the most urgent pending event for this cycle.
// Less urgent conditions are not queued; they are recomputed from the
// snapshot next cycle if still true.
func (f *FSM) currentEvent() Event {
	// Route is only empty before the first plan has ever been made.
	if f.deps.Route.Size() == 0 {
		f.currentWay = f.navstate.LastWaypt

		// The starting point may already be the first goal; if so,
		// check it off before entering the road.
		if f.currentWay == f.deps.Checkpoints.CurrentGoal() {
			f.deps.Checkpoints.Advance()
		}
		log.Printf("[CMDR] no plan yet, raising EnterLane")
		return EventEnterLane
	}

	newGoal1 := false
	newGoal2 := false

	// Walk the plan, ticking off edges until the reported waypoint is
	// found, and note any goals passed along the way.
	if f.navstate.LastWaypt != f.currentWay {
		oldWay := f.currentWay

		for f.navstate.LastWaypt != f.currentWay && f.deps.Route.Size() > 1 {
			f.deps.Route.PopFront()
			front := f.deps.Route.At(0)
			node, ok := f.deps.Graph.NodeByIndex(front.StartIndex)
			if !ok {
				log.Printf("[CMDR] node %d is not in the road network", front.StartIndex)
				return EventFail
			}
			f.currentWay = node.ID

			if f.currentWay == f.deps.Checkpoints.CurrentGoal() {
				newGoal1 = true
			}
			if f.currentWay == f.deps.Checkpoints.LookaheadGoal() {
				newGoal2 = true
			}
		}

		// Never matched: the reported waypoint must be the end of the
		// last edge in the plan.
		if f.navstate.LastWaypt != f.currentWay {
			last := f.deps.Route.At(0)
			node, ok := f.deps.Graph.NodeByIndex(last.EndIndex)
			if !ok {
				log.Printf("[CMDR] node %d is not in the road network", last.EndIndex)
				return EventFail
			}
			f.currentWay = node.ID

			if f.currentWay == f.deps.Checkpoints.CurrentGoal() {
				newGoal1 = true
			}
			if f.currentWay == f.deps.Checkpoints.LookaheadGoal() {
				newGoal2 = true
			}
		}

		log.Printf("[CMDR] current waypoint changed from %s to %s", oldWay, f.currentWay)
	}

	finished := false
	if newGoal1 {
		finished = !f.deps.Checkpoints.Advance()
	}
	if newGoal1 && newGoal2 {
		finished = !f.deps.Checkpoints.Advance()
	}

	event := EventNone

	// Resolve conditions in order of urgency. Only the first fires; the
	// rest stay pending for later cycles.
	switch {
	case finished:
		event = EventDone

	// Blockage beats normal replanning at a goal.
	case f.navstate.ReplanWaypt != f.oldReplan:
		f.oldReplan = f.navstate.ReplanWaypt
		if !f.navstate.ReplanWaypt.IsNone() {
			if f.navstate.RoadBlocked {
				event = EventBlocked
			} else {
				event = EventReplan
			}
		}

	case newGoal1 && !f.deps.Planner.Replan(f.navstate.LastWaypt):
		// needed to replan, but could not
		event = EventWait
	}

	return event
}

// #endregion current-event
