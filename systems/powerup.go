package systems

import (
	"math"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/event"
)

// PowerUpSystem ages world pickups and runs the timed spawner. Expired
// pickups are removed in reverse index order so in-place removal stays
// safe during iteration.
type PowerUpSystem struct {
	sinceSpawn float64
}

// NewPowerUpSystem creates the spawner/lifetime stage
func NewPowerUpSystem() *PowerUpSystem {
	return &PowerUpSystem{}
}

// Priority returns the system's priority
func (s *PowerUpSystem) Priority() int {
	return constants.PriorityPowerUp
}

// Update ages pickups and spawns a new one when due
func (s *PowerUpSystem) Update(w *engine.World, dt float64) {
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		pu := w.PowerUps[i]
		if pu.Update(dt) {
			w.Emit(event.TypePowerUpExpired, &event.PowerUpPayload{Kind: string(pu.Kind), Player: -1})
			w.PowerUps = append(w.PowerUps[:i], w.PowerUps[i+1:]...)
		}
	}

	s.sinceSpawn += dt
	if s.sinceSpawn < constants.PowerUpSpawnInterval {
		return
	}
	if len(w.PowerUps) >= constants.PowerUpMaxCount {
		return
	}

	x, y, ok := s.findSpot(w)
	if !ok {
		// Stay due; the next tick retries placement
		return
	}

	kind := entity.PowerUpKinds[w.Rng.Intn(len(entity.PowerUpKinds))]
	w.PowerUps = append(w.PowerUps, entity.NewPowerUp(x, y, kind))
	s.sinceSpawn = 0
	w.Emit(event.TypePowerUpSpawned, &event.PowerUpPayload{Kind: string(kind), Player: -1})
}

// findSpot rejection-samples a position at least the minimum distance
// from every player
func (s *PowerUpSystem) findSpot(w *engine.World) (float64, float64, bool) {
	for attempt := 0; attempt < constants.PowerUpPlacementAttempts; attempt++ {
		x := 100 + w.Rng.Float64()*(constants.LevelWidth-200)
		y := 100 + w.Rng.Float64()*(constants.LevelHeight-200)

		tooClose := false
		for _, p := range w.Players {
			if math.Hypot(x-p.X, y-p.Y) < constants.PowerUpMinPlayerDistance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			return x, y, true
		}
	}
	return 0, 0, false
}
