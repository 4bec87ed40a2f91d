package systems

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
)

// ObstacleSystem advances obstacle kinematics. Runs after player
// integration and before the resolution passes so players collide against
// the tick's final obstacle positions.
type ObstacleSystem struct{}

// NewObstacleSystem creates the obstacle kinematics stage
func NewObstacleSystem() *ObstacleSystem {
	return &ObstacleSystem{}
}

// Priority returns the system's priority
func (s *ObstacleSystem) Priority() int {
	return constants.PriorityObstacle
}

// Update moves, rotates, and cools down every obstacle
func (s *ObstacleSystem) Update(w *engine.World, dt float64) {
	for _, o := range w.Obstacles {
		o.Update(dt)
	}
}
