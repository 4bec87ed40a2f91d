package systems

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
)

// CameraSystem tracks the player group with the shared camera.
type CameraSystem struct{}

// NewCameraSystem creates the camera stage
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Priority returns the system's priority
func (s *CameraSystem) Priority() int {
	return constants.PriorityCamera
}

// Update retargets and smooths the camera
func (s *CameraSystem) Update(w *engine.World, dt float64) {
	w.Camera.Update(w.Players, dt)
}
