package systems

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
)

// BoundarySystem clamps every player back inside the level after all
// movement and resolution stages have run.
type BoundarySystem struct{}

// NewBoundarySystem creates the boundary stage
func NewBoundarySystem() *BoundarySystem {
	return &BoundarySystem{}
}

// Priority returns the system's priority
func (s *BoundarySystem) Priority() int {
	return constants.PriorityBoundary
}

// Update clamps players to the level bounds
func (s *BoundarySystem) Update(w *engine.World, dt float64) {
	for _, p := range w.Players {
		p.EnforceBounds()
	}
}
