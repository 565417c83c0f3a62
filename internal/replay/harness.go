package replay

import (
	"github.com/kdriscoll/roadnav/go-commander/internal/commander"
	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
	"github.com/kdriscoll/roadnav/go-commander/internal/mission"
	"github.com/kdriscoll/roadnav/go-commander/internal/route"
)

// #region types
// Snapshot is a single recorded navigator state for replay.
type Snapshot struct {
	Cycle int64
	Nav   commander.NavigatorState
}

// CycleResult captures the outcome of replaying one snapshot through the
// commander.
type CycleResult struct {
	Cycle     int64
	Event     commander.Event
	PrevState commander.State
	State     commander.State
	Behavior  commander.Behavior
	Order     commander.Order
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalCycles int
	Go          int
	Quit        int
	Abort       int
	Initialize  int
	FinalState  commander.State
	Blockages   []graph.ElementID
}

// #endregion types

// #region replay
// Replay feeds recorded navigator snapshots through a fresh commander
// wired to the given road network and mission. Operates entirely
// in-memory; stops early once the commander quits or aborts, matching
// the live driver loop.
func Replay(g *graph.WaypointGraph, checkpoints, blockageSeed []graph.ElementID, snapshots []Snapshot) ([]CycleResult, Summary) {
	rt := route.NewRoute(nil)
	goals := mission.NewCheckpointSequence(checkpoints)
	blocked := mission.NewBlockageSet(blockageSeed)
	planner := route.NewReplanner(route.NewPlanner(g), rt, goals, blocked)

	fsm := commander.New(commander.Deps{
		Graph:       g,
		Route:       rt,
		Checkpoints: goals,
		Blockages:   blocked,
		Planner:     planner,
	})

	results := make([]CycleResult, 0, len(snapshots))
	for _, snap := range snapshots {
		ord := fsm.Control(snap.Nav)
		results = append(results, CycleResult{
			Cycle:     snap.Cycle,
			Event:     fsm.LastEvent(),
			PrevState: fsm.Previous(),
			State:     fsm.State(),
			Behavior:  ord.Behavior,
			Order:     ord,
		})
		if ord.Behavior == commander.BehaviorQuit || ord.Behavior == commander.BehaviorAbort {
			break
		}
	}

	return results, Summarize(results, fsm.State(), blocked.IDs())
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []CycleResult, finalState commander.State, blockages []graph.ElementID) Summary {
	s := Summary{
		TotalCycles: len(results),
		FinalState:  finalState,
		Blockages:   blockages,
	}
	for _, r := range results {
		switch r.Behavior {
		case commander.BehaviorGo:
			s.Go++
		case commander.BehaviorQuit:
			s.Quit++
		case commander.BehaviorAbort:
			s.Abort++
		case commander.BehaviorInitialize:
			s.Initialize++
		}
	}
	return s
}

// #endregion replay
