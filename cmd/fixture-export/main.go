package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
	"github.com/kdriscoll/roadnav/go-commander/internal/logging"
	"github.com/kdriscoll/roadnav/go-commander/internal/mission"
	"github.com/kdriscoll/roadnav/go-commander/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to roadnav.db")
	outPath := flag.String("out", "", "output fixture JSON path")
	runID := flag.String("run", "", "run id to export (default: latest)")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/roadnav.db --out path/to/fixture.json [--run id]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// run exports a recorded run as a self-contained replay fixture: the
// road network, the mission, the navigator snapshots rebuilt from the
// decision log, and the recorded dispatches as expected results.
//
// Blockages are left out of the fixture on purpose: the recorded
// snapshots re-raise them during replay.
func run(dbPath, runID, outPath string) error {
	store, err := graph.NewNetworkStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	missionStore, err := mission.NewStore(store.DB())
	if err != nil {
		return err
	}
	checkpoints, err := missionStore.LoadCheckpoints()
	if err != nil {
		return err
	}

	if runID == "" {
		runID, err = logging.LatestRunID(store.DB())
		if err != nil {
			return err
		}
		if runID == "" {
			return fmt.Errorf("decision log is empty")
		}
	}
	decisions, err := logging.ListDecisions(store.DB(), runID, 0)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		return fmt.Errorf("no decisions recorded for run %s", runID)
	}

	network, err := exportNetwork(store)
	if err != nil {
		return err
	}

	f := replay.Fixture{
		Description: fmt.Sprintf("Exported from run %s.", runID),
		Network:     network,
	}
	for _, c := range checkpoints {
		f.Checkpoints = append(f.Checkpoints, string(c))
	}
	for _, d := range decisions {
		f.Snapshots = append(f.Snapshots, replay.FixtureSnapshot{
			Cycle:       d.Cycle,
			LastWaypt:   d.LastWaypt,
			ReplanWaypt: d.ReplanWaypt,
			RoadBlocked: d.RoadBlocked,
		})
		f.ExpectedResults = append(f.ExpectedResults, replay.FixtureExpectedResult{
			Cycle:    d.Cycle,
			Behavior: d.Behavior,
			State:    d.NewState,
		})
	}

	data, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("exported run %s: %d cycles, %d waypoints, %d checkpoints -> %s\n",
		runID, len(decisions), len(network.Waypoints), len(checkpoints), outPath)
	return nil
}

// exportNetwork reads the stored road network back out as fixture JSON.
func exportNetwork(store *graph.NetworkStore) (replay.FixtureNetwork, error) {
	var n replay.FixtureNetwork

	rows, err := store.DB().Query(`SELECT idx, id, lat, lon FROM waypoints ORDER BY idx ASC`)
	if err != nil {
		return n, fmt.Errorf("export waypoints: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var w replay.FixtureWaypoint
		if err := rows.Scan(&w.Index, &w.ID, &w.Lat, &w.Lon); err != nil {
			return n, fmt.Errorf("scan waypoint: %w", err)
		}
		n.Waypoints = append(n.Waypoints, w)
	}
	if err := rows.Err(); err != nil {
		return n, err
	}

	edgeRows, err := store.DB().Query(`SELECT start_idx, end_idx, distance FROM lane_edges ORDER BY start_idx ASC`)
	if err != nil {
		return n, fmt.Errorf("export lane edges: %w", err)
	}
	defer edgeRows.Close()
	for edgeRows.Next() {
		var e replay.FixtureEdge
		if err := edgeRows.Scan(&e.Start, &e.End, &e.Distance); err != nil {
			return n, fmt.Errorf("scan lane edge: %w", err)
		}
		n.Edges = append(n.Edges, e)
	}
	return n, edgeRows.Err()
}

// #endregion export
