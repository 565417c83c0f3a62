package mission

import (
	"github.com/kdriscoll/roadnav/go-commander/internal/graph"
)

// #region checkpoint-sequence

// CheckpointSequence tracks the ordered mission checkpoints. The
// commander drives to CurrentGoal and watches LookaheadGoal so it can
// detect passing two checkpoints in one cycle.
type CheckpointSequence struct {
	checkpoints []graph.ElementID
	next        int
}

// NewCheckpointSequence creates a sequence positioned at the first
// checkpoint.
func NewCheckpointSequence(ids []graph.ElementID) *CheckpointSequence {
	cs := &CheckpointSequence{checkpoints: make([]graph.ElementID, len(ids))}
	copy(cs.checkpoints, ids)
	return cs
}

// CurrentGoal returns the checkpoint the vehicle must reach next, or the
// none sentinel when the mission is exhausted.
func (c *CheckpointSequence) CurrentGoal() graph.ElementID {
	if c.next >= len(c.checkpoints) {
		return graph.None
	}
	return c.checkpoints[c.next]
}

// LookaheadGoal returns the checkpoint after the current goal, or the
// none sentinel.
func (c *CheckpointSequence) LookaheadGoal() graph.ElementID {
	if c.next+1 >= len(c.checkpoints) {
		return graph.None
	}
	return c.checkpoints[c.next+1]
}

// Advance moves to the next checkpoint. It returns false when no
// checkpoints remain, which the commander treats as mission complete.
func (c *CheckpointSequence) Advance() bool {
	if c.next < len(c.checkpoints) {
		c.next++
	}
	return c.next < len(c.checkpoints)
}

// Remaining returns how many checkpoints are still ahead.
func (c *CheckpointSequence) Remaining() int {
	if c.next >= len(c.checkpoints) {
		return 0
	}
	return len(c.checkpoints) - c.next
}

// #endregion checkpoint-sequence

// #region blockage-set

// BlockageSet records waypoints currently believed impassable. The
// planner consults it during every replan.
type BlockageSet struct {
	ids   map[graph.ElementID]bool
	order []graph.ElementID
}

// NewBlockageSet creates an empty set, optionally seeded with waypoints
// recorded by a previous run.
func NewBlockageSet(seed []graph.ElementID) *BlockageSet {
	b := &BlockageSet{ids: make(map[graph.ElementID]bool)}
	for _, id := range seed {
		b.Add(id)
	}
	return b
}

// Add marks a waypoint as blocked. Adding the none sentinel or a
// duplicate is a no-op.
func (b *BlockageSet) Add(id graph.ElementID) {
	if id.IsNone() || b.ids[id] {
		return
	}
	b.ids[id] = true
	b.order = append(b.order, id)
}

// Contains reports whether a waypoint is blocked.
func (b *BlockageSet) Contains(id graph.ElementID) bool {
	return b.ids[id]
}

// IDs returns the blocked waypoints in insertion order.
func (b *BlockageSet) IDs() []graph.ElementID {
	out := make([]graph.ElementID, len(b.order))
	copy(out, b.order)
	return out
}

// #endregion blockage-set
