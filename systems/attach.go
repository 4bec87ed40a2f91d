package systems

import (
	"github.com/chessdroid108/TagArena/engine"
)

// Attach registers the standard simulation pipeline on a world. Systems
// run in priority order each tick.
func Attach(w *engine.World) {
	w.AddSystem(NewInputSystem())
	w.AddSystem(NewPhysicsSystem())
	w.AddSystem(NewPowerUpSystem())
	w.AddSystem(NewObstacleSystem())
	w.AddSystem(NewCollisionSystem())
	w.AddSystem(NewPickupSystem())
	w.AddSystem(NewImpactSystem())
	w.AddSystem(NewBoundarySystem())
	w.AddSystem(NewCameraSystem())
	w.AddSystem(NewRoundSystem())
}
