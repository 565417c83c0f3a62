package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kdriscoll/roadnav/go-commander/internal/codec"
	"github.com/kdriscoll/roadnav/go-commander/internal/commander"
	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
	"github.com/kdriscoll/roadnav/go-commander/internal/logging"
	"github.com/kdriscoll/roadnav/go-commander/internal/mission"
	"github.com/kdriscoll/roadnav/go-commander/internal/route"
)

// #region main
func main() {
	dbPath := envOr("ROADNAV_DB", "roadnav.db")
	navAddr := envOr("NAV_ADDR", "localhost:50061")
	cycleMs := envIntOr("CYCLE_MS", 250)

	// Road network
	store, err := graph.NewNetworkStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open network store: %v", err)
	}
	defer store.Close()

	g, err := store.Load()
	if err != nil {
		log.Fatalf("failed to load road network: %v", err)
	}

	// Mission definition and prior blockages
	missionStore, err := mission.NewStore(store.DB())
	if err != nil {
		log.Fatalf("failed to open mission store: %v", err)
	}
	checkpoints, err := missionStore.LoadCheckpoints()
	if err != nil {
		log.Fatalf("failed to load checkpoints: %v", err)
	}
	if len(checkpoints) == 0 {
		log.Fatal("no mission loaded; run bootstrap-graph first")
	}
	blockageSeed, err := missionStore.ListBlockages()
	if err != nil {
		log.Fatalf("failed to load blockages: %v", err)
	}

	if err := logging.EnsureSchema(store.DB()); err != nil {
		log.Fatalf("failed to prepare decision log: %v", err)
	}

	// Connect to the navigator bridge
	navClient, err := codec.NewNavClient(navAddr)
	if err != nil {
		log.Fatalf("failed to connect to navigator at %s: %v", navAddr, err)
	}
	defer navClient.Close()

	// Wire the commander
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

	runID := uuid.New().String()
	log.Printf("[CMDR] run %s: %d checkpoints, %d known blockages, cycle %dms",
		runID, len(checkpoints), len(blockageSeed), cycleMs)

	ticker := time.NewTicker(time.Duration(cycleMs) * time.Millisecond)
	defer ticker.Stop()

	var cycle int64
	for range ticker.C {
		cycle++

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		navstate, err := navClient.GetState(ctx)
		cancel()
		if err != nil {
			log.Printf("[CMDR] navigator state error: %v", err)
			continue
		}

		ord := fsm.Control(navstate)

		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		err = navClient.PublishOrder(ctx, ord)
		cancel()
		if err != nil {
			log.Printf("[CMDR] publish error: %v", err)
		}

		// Persist new blockages so a restart plans around them.
		if fsm.LastEvent() == commander.EventBlocked {
			if err := missionStore.RecordBlockage(navstate.ReplanWaypt); err != nil {
				log.Printf("[CMDR] blockage persist error: %v", err)
			}
		}

		err = logging.LogDecision(store.DB(), logging.DecisionEntry{
			RunID:       runID,
			Cycle:       cycle,
			Event:       fsm.LastEvent().String(),
			PrevState:   fsm.Previous().String(),
			NewState:    fsm.State().String(),
			Behavior:    ord.Behavior.String(),
			LastWaypt:   string(navstate.LastWaypt),
			ReplanWaypt: string(navstate.ReplanWaypt),
			RoadBlocked: navstate.RoadBlocked,
		})
		if err != nil {
			log.Printf("[CMDR] logging error: %v", err)
		}

		if ord.Behavior == commander.BehaviorQuit || ord.Behavior == commander.BehaviorAbort {
			log.Printf("[CMDR] run %s finished after %d cycles: %s", runID, cycle, ord.Behavior)
			break
		}
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("ignoring invalid %s=%q", key, v)
	}
	return fallback
}

// #endregion helpers
