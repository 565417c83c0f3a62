package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
	"github.com/kdriscoll/roadnav/go-commander/internal/mission"
)

// #region network-file

// networkFile is the JSON input: a road network plus the mission
// checkpoint order.
type networkFile struct {
	Waypoints []struct {
		ID    string  `json:"id"`
		Index int64   `json:"index"`
		Lat   float64 `json:"lat"`
		Lon   float64 `json:"lon"`
	} `json:"waypoints"`
	Edges []struct {
		Start    int64   `json:"start"`
		End      int64   `json:"end"`
		Distance float64 `json:"distance"`
	} `json:"edges"`
	Checkpoints []string `json:"checkpoints"`
}

// #endregion network-file

// #region main

func main() {
	dbPath := flag.String("db", "", "path to roadnav.db")
	networkPath := flag.String("network", "", "path to road network JSON")
	clearBlockages := flag.Bool("clear-blockages", false, "forget blockages from previous runs")
	flag.Parse()

	if *dbPath == "" || *networkPath == "" {
		fmt.Fprintln(os.Stderr, "usage: bootstrap-graph --db path/to/roadnav.db --network path/to/network.json [--clear-blockages]")
		os.Exit(2)
	}

	if err := run(*dbPath, *networkPath, *clearBlockages); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(dbPath, networkPath string, clearBlockages bool) error {
	data, err := os.ReadFile(networkPath)
	if err != nil {
		return fmt.Errorf("read network: %w", err)
	}
	var nf networkFile
	if err := json.Unmarshal(data, &nf); err != nil {
		return fmt.Errorf("parse network: %w", err)
	}
	if len(nf.Checkpoints) == 0 {
		return fmt.Errorf("network file defines no checkpoints")
	}

	store, err := graph.NewNetworkStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	for _, w := range nf.Waypoints {
		n := graph.WayPointNode{ID: graph.ElementID(w.ID), Index: w.Index, Lat: w.Lat, Lon: w.Lon}
		if err := store.AddWaypoint(n); err != nil {
			return err
		}
	}
	for _, e := range nf.Edges {
		edge := graph.WayPointEdge{StartIndex: e.Start, EndIndex: e.End, Distance: e.Distance}
		if err := store.AddLaneEdge(edge); err != nil {
			return err
		}
	}

	// Validate the stored network before writing the mission.
	if _, err := store.Load(); err != nil {
		return fmt.Errorf("network does not validate: %w", err)
	}

	missionStore, err := mission.NewStore(store.DB())
	if err != nil {
		return err
	}
	checkpoints := make([]graph.ElementID, len(nf.Checkpoints))
	for i, c := range nf.Checkpoints {
		checkpoints[i] = graph.ElementID(c)
	}
	if err := missionStore.SetCheckpoints(checkpoints); err != nil {
		return err
	}
	if clearBlockages {
		if err := missionStore.ClearBlockages(); err != nil {
			return err
		}
	}

	waypoints, edges, err := store.Counts()
	if err != nil {
		return err
	}
	fmt.Printf("loaded %d waypoints, %d lane edges, %d checkpoints into %s\n",
		waypoints, edges, len(checkpoints), dbPath)
	return nil
}

// #endregion run
