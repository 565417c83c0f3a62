package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kdriscoll/roadnav/go-commander/internal/commander"
	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
	"github.com/kdriscoll/roadnav/go-commander/internal/logging"
	"github.com/kdriscoll/roadnav/go-commander/internal/mission"
	"github.com/kdriscoll/roadnav/go-commander/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to roadnav.db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	runID := flag.String("run", "", "run id to replay (DB mode, default: latest)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/roadnav.db [--run id]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *runID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

// runFixtureMode replays a fixture and diffs each cycle against the
// fixture's expected results. Returns 0 when everything matches.
func runFixtureMode(fixturePath string) int {
	f, err := replay.LoadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	g, err := f.Network.BuildGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build graph: %v\n", err)
		return 2
	}

	results, summary := replay.Replay(g, f.CheckpointIDs(), f.BlockageIDs(), f.HarnessSnapshots())

	if f.Description != "" {
		fmt.Printf("%s\n\n", f.Description)
	}

	mismatches := 0
	for i, r := range results {
		line := fmt.Sprintf("cycle %-4d %-10s %-5s -> %-5s %s",
			r.Cycle, r.Event, r.PrevState, r.State, r.Behavior)
		if i < len(f.ExpectedResults) {
			want := f.ExpectedResults[i]
			if r.Behavior.String() != want.Behavior || r.State.String() != want.State {
				line += fmt.Sprintf("   MISMATCH (expected %s/%s)", want.Behavior, want.State)
				mismatches++
			}
		}
		fmt.Println(line)
	}
	if len(results) != len(f.ExpectedResults) && len(f.ExpectedResults) > 0 {
		fmt.Printf("cycle count differs: replayed %d, expected %d\n", len(results), len(f.ExpectedResults))
		mismatches++
	}

	printSummary(summary)
	if mismatches > 0 {
		fmt.Printf("FAIL: %d mismatches\n", mismatches)
		return 1
	}
	fmt.Println("PASS")
	return 0
}

// #endregion fixture-mode

// #region db-mode

// runDBMode rebuilds the navigator snapshots of a recorded run from the
// decision log and replays them against the stored network, diffing the
// replayed dispatches against the recorded ones.
func runDBMode(dbPath, runID string) int {
	store, err := graph.NewNetworkStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	g, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load network: %v\n", err)
		return 2
	}
	missionStore, err := mission.NewStore(store.DB())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open mission store: %v\n", err)
		return 2
	}
	checkpoints, err := missionStore.LoadCheckpoints()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load checkpoints: %v\n", err)
		return 2
	}

	if runID == "" {
		runID, err = logging.LatestRunID(store.DB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "find latest run: %v\n", err)
			return 2
		}
		if runID == "" {
			fmt.Fprintln(os.Stderr, "decision log is empty")
			return 2
		}
	}
	decisions, err := logging.ListDecisions(store.DB(), runID, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load decisions: %v\n", err)
		return 2
	}
	if len(decisions) == 0 {
		fmt.Fprintf(os.Stderr, "no decisions recorded for run %s\n", runID)
		return 2
	}

	snapshots := make([]replay.Snapshot, len(decisions))
	for i, d := range decisions {
		snapshots[i] = replay.Snapshot{
			Cycle: d.Cycle,
			Nav: commanderState(d),
		}
	}

	// Blockages recorded during the run re-emerge from the snapshots, so
	// the replay starts with an empty blockage set.
	results, summary := replay.Replay(g, checkpoints, nil, snapshots)

	fmt.Printf("replaying run %s (%d recorded cycles)\n\n", runID, len(decisions))

	mismatches := 0
	for i, r := range results {
		d := decisions[i]
		line := fmt.Sprintf("cycle %-4d %-10s %-5s -> %-5s %s",
			r.Cycle, r.Event, r.PrevState, r.State, r.Behavior)
		if r.Behavior.String() != d.Behavior || r.State.String() != d.NewState {
			line += fmt.Sprintf("   DRIFT (recorded %s/%s)", d.Behavior, d.NewState)
			mismatches++
		}
		fmt.Println(line)
	}
	if len(results) != len(decisions) {
		fmt.Printf("cycle count differs: replayed %d, recorded %d\n", len(results), len(decisions))
		mismatches++
	}

	printSummary(summary)
	if mismatches > 0 {
		fmt.Printf("FAIL: %d cycles drifted from the recorded run\n", mismatches)
		return 1
	}
	fmt.Println("PASS: replay matches the recorded run")
	return 0
}

// #endregion db-mode

// #region helpers

func commanderState(d logging.DecisionEntry) commander.NavigatorState {
	return commander.NavigatorState{
		LastWaypt:   graph.ElementID(d.LastWaypt),
		ReplanWaypt: graph.ElementID(d.ReplanWaypt),
		RoadBlocked: d.RoadBlocked,
	}
}

func printSummary(s replay.Summary) {
	var parts []string
	if s.Go > 0 {
		parts = append(parts, fmt.Sprintf("go=%d", s.Go))
	}
	if s.Initialize > 0 {
		parts = append(parts, fmt.Sprintf("initialize=%d", s.Initialize))
	}
	if s.Quit > 0 {
		parts = append(parts, fmt.Sprintf("quit=%d", s.Quit))
	}
	if s.Abort > 0 {
		parts = append(parts, fmt.Sprintf("abort=%d", s.Abort))
	}
	fmt.Printf("\n%d cycles (%s), final state %s", s.TotalCycles, strings.Join(parts, " "), s.FinalState)
	if len(s.Blockages) > 0 {
		fmt.Printf(", blockages %v", s.Blockages)
	}
	fmt.Println()
}

// #endregion helpers
