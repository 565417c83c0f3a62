package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
	"github.com/kdriscoll/roadnav/go-commander/internal/logging"
	"github.com/kdriscoll/roadnav/go-commander/internal/mission"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to roadnav.db")
	runID := flag.String("run", "", "show decisions for one run (default: latest)")
	last := flag.Int("last", 20, "show N most recent decisions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/roadnav.db [--run id] [--last N] [--json]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region report

// report is the JSON output shape.
type report struct {
	Waypoints   int                     `json:"waypoints"`
	LaneEdges   int                     `json:"lane_edges"`
	Checkpoints []graph.ElementID       `json:"checkpoints"`
	Blockages   []graph.ElementID       `json:"blockages"`
	RunID       string                  `json:"run_id,omitempty"`
	Decisions   []logging.DecisionEntry `json:"decisions,omitempty"`
}

func run(dbPath, runID string, last int, jsonOut bool) error {
	store, err := graph.NewNetworkStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	waypoints, edges, err := store.Counts()
	if err != nil {
		return err
	}

	missionStore, err := mission.NewStore(store.DB())
	if err != nil {
		return err
	}
	checkpoints, err := missionStore.LoadCheckpoints()
	if err != nil {
		return err
	}
	blockages, err := missionStore.ListBlockages()
	if err != nil {
		return err
	}

	if err := logging.EnsureSchema(store.DB()); err != nil {
		return err
	}
	if runID == "" {
		runID, err = logging.LatestRunID(store.DB())
		if err != nil {
			return err
		}
	}
	var decisions []logging.DecisionEntry
	if runID != "" {
		decisions, err = logging.ListDecisions(store.DB(), runID, last)
		if err != nil {
			return err
		}
	}

	r := report{
		Waypoints:   waypoints,
		LaneEdges:   edges,
		Checkpoints: checkpoints,
		Blockages:   blockages,
		RunID:       runID,
		Decisions:   decisions,
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Printf("network: %d waypoints, %d lane edges\n", r.Waypoints, r.LaneEdges)
	fmt.Printf("checkpoints: %v\n", r.Checkpoints)
	fmt.Printf("blockages: %v\n", r.Blockages)
	if r.RunID == "" {
		fmt.Println("no runs recorded")
		return nil
	}
	fmt.Printf("\nrun %s:\n", r.RunID)
	fmt.Printf("%-6s %-10s %-14s %-10s %-10s %-10s %s\n",
		"cycle", "event", "state", "behavior", "last", "replan", "blocked")
	for _, d := range r.Decisions {
		fmt.Printf("%-6d %-10s %-5s -> %-5s %-10s %-10s %-10s %v\n",
			d.Cycle, d.Event, d.PrevState, d.NewState, d.Behavior,
			orDash(d.LastWaypt), orDash(d.ReplanWaypt), d.RoadBlocked)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// #endregion report
