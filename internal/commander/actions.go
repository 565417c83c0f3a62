package commander

import (
	"log"
)

// maxOrderWaypoints bounds how many upcoming route nodes an order
// carries for the navigator.
const maxOrderWaypoints = 5

// #region error-actions

// actionError handles (event, state) combinations with no explicit
// transition. Defensive only; unreachable with a complete table.
func (f *FSM) actionError(event Event) Order {
	log.Printf("[CMDR] invalid event %s in state %s", event, f.prev)
	return f.actionFail(event)
}

// actionFail ends the mission with an abort order.
func (f *FSM) actionFail(event Event) Order {
	log.Printf("[CMDR] ERROR: mission failure")
	return Order{Behavior: BehaviorAbort}
}

// actionWait keeps driving the existing plan when a replan was warranted
// but not possible; retried every cycle until conditions change.
func (f *FSM) actionWait(event Event) Order {
	log.Printf("[CMDR] no replan available, waiting it out")
	return f.prepareOrder(BehaviorGo)
}

// #endregion error-actions

// #region steady-state-actions

func (f *FSM) actionInDone(event Event) Order {
	return Order{Behavior: BehaviorQuit}
}

func (f *FSM) actionInInit(event Event) Order {
	return Order{Behavior: BehaviorInitialize}
}

func (f *FSM) actionInRoad(event Event) Order {
	return f.prepareOrder(BehaviorGo)
}

// #endregion steady-state-actions

// #region entry-actions

// actionToDone announces mission completion on entering Done.
func (f *FSM) actionToDone(event Event) Order {
	log.Printf("[CMDR] mission completed")
	return f.actionInDone(event)
}

// #endregion entry-actions

// #region replanning-actions

// blockedInRoad records the blockage and plans around it. If no plan is
// possible the vehicle keeps driving the old one and retries.
func (f *FSM) blockedInRoad(event Event) Order {
	log.Printf("[CMDR] road blocked at %s, making a new plan", f.navstate.ReplanWaypt)

	f.deps.Blockages.Add(f.navstate.ReplanWaypt)

	if !f.deps.Planner.Replan(f.navstate.LastWaypt) {
		return f.actionWait(event)
	}
	return f.actionInRoad(event)
}

// replanInRoad replans from the requested waypoint, treating it as the
// vehicle's last known position.
func (f *FSM) replanInRoad(event Event) Order {
	log.Printf("[CMDR] making new plan from %s", f.navstate.ReplanWaypt)

	f.navstate.LastWaypt = f.navstate.ReplanWaypt

	if !f.deps.Planner.Replan(f.navstate.LastWaypt) {
		return f.actionWait(event)
	}
	return f.actionInRoad(event)
}

// initToRoad attempts the first plan of the mission. Unlike in-road
// replans, failure here is fatal: the mission cannot start.
func (f *FSM) initToRoad(event Event) Order {
	log.Printf("[CMDR] on the road, making initial plan")

	if !f.deps.Planner.Replan(f.navstate.LastWaypt) {
		return f.actionFail(event)
	}
	return f.actionInRoad(event)
}

// #endregion replanning-actions

// #region prepare-order

// prepareOrder builds a Go order carrying the next few route waypoints.
// Nodes that fail to resolve are skipped; order construction never
// fails the cycle.
func (f *FSM) prepareOrder(b Behavior) Order {
	ord := Order{Behavior: b}

	n := f.deps.Route.Size()
	for i := 0; i < n && len(ord.Waypoints) < maxOrderWaypoints; i++ {
		e := f.deps.Route.At(i)
		if node, ok := f.deps.Graph.NodeByIndex(e.StartIndex); ok {
			ord.Waypoints = append(ord.Waypoints, node.ID)
		}
		if i == n-1 && len(ord.Waypoints) < maxOrderWaypoints {
			if node, ok := f.deps.Graph.NodeByIndex(e.EndIndex); ok {
				ord.Waypoints = append(ord.Waypoints, node.ID)
			}
		}
	}

	return ord
}

// #endregion prepare-order
